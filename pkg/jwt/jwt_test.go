package jwt

import (
	"testing"

	"piecon/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	token, err := GenerateToken(42)
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTSecret: "different-secret"}
	_, err = ParseToken(token)
	assert.Error(t, err)
}
