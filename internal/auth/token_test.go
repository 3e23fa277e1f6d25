package auth

import (
	"os"
	"testing"

	"localink_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) {
	os.Setenv("DATABASE_URL", "file::memory:")
	os.Setenv("JWT_SECRET", "unit_test_secret_key")
	config.LoadConfig()
}

func TestGenerateAndParseToken(t *testing.T) {
	setupConfig(t)

	token, err := GenerateToken("user-123", "explorer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "explorer", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupConfig(t)

	token, err := GenerateToken("user-456", "business")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a_different_secret"
	defer func() {
		config.AppConfig.JWT.Secret = "unit_test_secret_key"
	}()

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}
