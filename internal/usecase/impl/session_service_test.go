package impl

import (
	"context"
	"testing"

	"atelier/config"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/infra/auth"
	"atelier/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "studio@example.com"
	testAdminPassword = "parola-secreta"
)

func newSessionService(t *testing.T) (usecase.SessionUsecase, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash(testAdminPassword)
	require.NoError(t, err)

	cfg.Admin = &config.AdminConfig{
		Email:        testAdminEmail,
		PasswordHash: hash,
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewSessionService(SessionServiceParams{
		TokenService: tokenService,
		Hasher:       hasher,
		Config:       cfg,
	})

	return service, cfg
}

func TestSessionService_Login(t *testing.T) {
	service, cfg := newSessionService(t)

	pair, err := service.Login(context.Background(), testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The access token must carry the admin role.
	token, err := jwt.Parse(pair.AccessToken, func(_ *jwt.Token) (any, error) {
		return []byte(cfg.SecretKey.Access), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, testAdminEmail, claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "admin")
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.Login(context.Background(), testAdminEmail, "gresit")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.Login(context.Background(), "altcineva@example.com", testAdminPassword)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Refresh(t *testing.T) {
	service, _ := newSessionService(t)
	ctx := context.Background()

	pair, err := service.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestSessionService_Refresh_RejectsAccessToken(t *testing.T) {
	service, _ := newSessionService(t)
	ctx := context.Background()

	pair, err := service.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	_, err = service.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_Refresh_RejectsGarbage(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.Refresh(context.Background(), "nu-e-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_LogoutRevokesSession(t *testing.T) {
	service, _ := newSessionService(t)
	ctx := context.Background()

	pair, err := service.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, pair.RefreshToken))

	_, err = service.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_LogoutLeavesOtherSessionsAlive(t *testing.T) {
	service, _ := newSessionService(t)
	ctx := context.Background()

	first, err := service.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	second, err := service.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, first.RefreshToken))

	_, err = service.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}
