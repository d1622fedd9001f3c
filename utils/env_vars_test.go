package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("unset uses default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnv("GRANTSCOUT_TEST_UNSET", "fallback"))
		assert.Equal(t, 12, GetEnv("GRANTSCOUT_TEST_UNSET", 12))
	})

	t.Run("empty uses default", func(t *testing.T) {
		t.Setenv("GRANTSCOUT_TEST_EMPTY", "")
		assert.True(t, GetEnv("GRANTSCOUT_TEST_EMPTY", true))
	})

	t.Run("typed values", func(t *testing.T) {
		t.Setenv("GRANTSCOUT_TEST_STRING", "value")
		t.Setenv("GRANTSCOUT_TEST_INT", "42")
		t.Setenv("GRANTSCOUT_TEST_BOOL", "true")
		t.Setenv("GRANTSCOUT_TEST_FLOAT", "0.25")
		t.Setenv("GRANTSCOUT_TEST_DURATION", "1m30s")

		assert.Equal(t, "value", GetEnv("GRANTSCOUT_TEST_STRING", ""))
		assert.Equal(t, 42, GetEnv("GRANTSCOUT_TEST_INT", 0))
		assert.True(t, GetEnv("GRANTSCOUT_TEST_BOOL", false))
		assert.Equal(t, 0.25, GetEnv("GRANTSCOUT_TEST_FLOAT", 0.0))
		assert.Equal(t, 90*time.Second, GetEnv("GRANTSCOUT_TEST_DURATION", time.Duration(0)))
	})
}

func TestParseEnv(t *testing.T) {
	_, err := parseEnv[int]("forty-two")
	assert.Error(t, err)

	_, err = parseEnv[time.Duration]("10 parsecs")
	assert.Error(t, err)

	value, err := parseEnv[bool]("0")
	assert.NoError(t, err)
	assert.False(t, value)
}
