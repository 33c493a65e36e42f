package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile lookup matches zero rows.
var ErrProfileNotFound = errors.New("profile not found")

// ErrUsernameTaken is returned when the store's uniqueness constraint rejects
// a username.
var ErrUsernameTaken = errors.New("username already taken")

// ProfileRepository manages social profiles.
type ProfileRepository interface {
	// Upsert creates the profile on first save and overwrites it afterwards.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile owned by an account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves a profile by its unique handle.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// Exists reports whether a profile row exists for the account. A false
	// result is only returned for the store's "zero rows" signal; any other
	// lookup failure comes back as a non-nil error.
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)

	// UpdateAvatarURL points the profile at a newly uploaded avatar object.
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error
}
