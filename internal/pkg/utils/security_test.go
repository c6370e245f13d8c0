package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyHashing(t *testing.T) {
	hash, err := HashAPIKey("admin-key")
	require.NoError(t, err)
	assert.NotEqual(t, "admin-key", hash)

	assert.True(t, CheckAPIKeyHash("admin-key", hash))
	assert.False(t, CheckAPIKeyHash("wrong-key", hash))
	assert.False(t, CheckAPIKeyHash("admin-key", "not-a-hash"))
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT("session-123", secret, time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired, err := GenerateJWT("session-123", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(expired, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
