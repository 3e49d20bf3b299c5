// Package service defines the domain-facing ports implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating the
// session tokens of the admin workflow.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a session
	// identified by the account email. The refresh token carries the
	// session ID so it can be revoked on logout.
	GenerateTokens(email, sessionID string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
