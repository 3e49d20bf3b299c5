package auth

import (
	"testing"

	"atelier/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc)

	accessToken, refreshToken, err := svc.GenerateTokens("studio@example.com", "session-1", []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	token, err := svc.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "studio@example.com", claims["sub"])
	assert.Equal(t, "session-1", claims["sid"])
	assert.Equal(t, "access", claims["type"])
	assert.Contains(t, claims["roles"], "admin")

	// Validate refresh token with the refresh secret
	token, err = svc.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	assert.Nil(t, claims["roles"]) // Refresh tokens don't carry roles
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens("studio@example.com", "session-1", []string{"admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "other-secret")
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
