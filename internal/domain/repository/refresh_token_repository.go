package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a token hash matches zero rows.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository manages persisted session handles.
type RefreshTokenRepository interface {
	// Create persists a new refresh token hash.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a stored token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a stored token by its hash.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every stored token for an account (full logout).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
