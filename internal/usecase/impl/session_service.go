package impl

import (
	"context"
	"sync"
	"time"

	"atelier/config"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminRole is the single role carried by admin access tokens.
const adminRole = "admin"

type sessionService struct {
	tokenService service.TokenService
	hasher       service.PasswordHasher
	config       *config.Config

	mu      sync.Mutex
	revoked map[string]time.Time // session ID -> token expiry, prunable after that
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Config       *config.Config
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		config:       params.Config,
		revoked:      make(map[string]time.Time),
	}
}

// Login verifies the admin credentials and opens a session
func (s *sessionService) Login(_ context.Context, email, password string) (*usecase.TokenPair, error) {
	admin := s.config.Admin
	if admin == nil || email != admin.Email {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !s.hasher.Check(password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()

	access, refresh, err := s.tokenService.GenerateTokens(email, sessionID, []string{adminRole})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The session
// ID carries over so a later logout still revokes it.
func (s *sessionService) Refresh(_ context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	email, _ := claims["sub"].(string)
	sessionID, _ := claims["sid"].(string)

	if s.isRevoked(sessionID) {
		return nil, domainerrors.ErrSessionExpired
	}

	access, refresh, err := s.tokenService.GenerateTokens(email, sessionID, []string{adminRole})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the session carried by the refresh token
func (s *sessionService) Logout(_ context.Context, refreshToken string) error {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		return domainerrors.ErrSessionExpired
	}

	expiry := time.Now().Add(s.tokenService.GetRefreshTokenDuration())
	if exp, ok := claims["exp"].(float64); ok {
		expiry = time.Unix(int64(exp), 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[sessionID] = expiry

	return nil
}

// parseRefreshToken validates signature, expiry and token type.
func (s *sessionService) parseRefreshToken(refreshToken string) (jwt.MapClaims, error) {
	token, err := s.tokenService.ValidateToken(refreshToken, s.config.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionExpired
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrSessionExpired
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrSessionExpired
	}

	return claims, nil
}

// isRevoked checks the revocation list, pruning entries whose tokens
// have expired on their own.
func (s *sessionService) isRevoked(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for sid, expiry := range s.revoked {
		if expiry.Before(now) {
			delete(s.revoked, sid)
		}
	}

	_, revoked := s.revoked[sessionID]

	return revoked
}
