// Package repository defines the persistence contracts the domain depends on.
// Each interface reports "zero rows" through a dedicated sentinel error so
// callers can tell an absent row from a failed lookup.
package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user lookup matches zero rows.
var ErrUserNotFound = errors.New("user not found")

// UserRepository manages account rows.
type UserRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves an account by ID, with its profile preloaded when one exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves an account by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
