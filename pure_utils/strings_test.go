package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, NameSimilarity("Ada Lovelace", "  ada lovelace "))
	assert.Greater(t, NameSimilarity("A. Lee", "Alice Lee"), 0.5)
	assert.Less(t, NameSimilarity("Ada Lovelace", "Bob Smith"), NameSimilarity("Ada Lovelace", "Ada Lovelace-King"))
	assert.Equal(t, 0.0, NameSimilarity("", "Grace Hopper"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}
