package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyNS00/caffine-tracker/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"
	config.JWTExpireHours = 1

	token, err := GenerateToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.JWTSecret = "test-secret"

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.JWTSecret = "secret-a"
	config.JWTExpireHours = 1

	token, err := GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	config.JWTSecret = "secret-b"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
