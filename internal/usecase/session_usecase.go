package usecase

import "context"

// TokenPair is the access/refresh token pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionUsecase defines the admin session lifecycle.
type SessionUsecase interface {
	// Login verifies the admin credentials and opens a session.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the session carried by the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
