package usecase

import "context"

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	// Refresh validates a refresh token, rotates it, and issues a new pair.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
