package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvReaders(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		t.Setenv("TEST_ENV_STRING", "from-env")
		assert.Equal(t, "from-env", GetEnvString("TEST_ENV_STRING", "fallback"))
		assert.Equal(t, "fallback", GetEnvString("TEST_ENV_STRING_UNSET", "fallback"))
	})

	t.Run("Int", func(t *testing.T) {
		t.Setenv("TEST_ENV_INT", "42")
		assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 7))
		assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT_UNSET", 7))

		t.Setenv("TEST_ENV_INT_BAD", "not-a-number")
		assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT_BAD", 7), "garbage falls back to the default")
	})

	t.Run("Bool", func(t *testing.T) {
		t.Setenv("TEST_ENV_BOOL", "true")
		assert.True(t, GetEnvBool("TEST_ENV_BOOL", false))
		assert.False(t, GetEnvBool("TEST_ENV_BOOL_UNSET", false))

		t.Setenv("TEST_ENV_BOOL_BAD", "yep")
		assert.True(t, GetEnvBool("TEST_ENV_BOOL_BAD", true), "garbage falls back to the default")
	})
}
