package pure_utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, NonNil[string](nil))
	assert.Equal(t, []string{"a"}, NonNil([]string{"a"}))
}
