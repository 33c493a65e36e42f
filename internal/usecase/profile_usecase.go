package usecase

import (
	"context"

	"pairup/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveProfileInput defines the data accepted by the profile upsert.
type SaveProfileInput struct {
	Username            string
	DisplayName         string
	Bio                 string
	BeveragePreferences []string
	AlcoholToggle       string
	InstagramHandle     *string
	TikTokHandle        *string
}

// AvatarUploadInput carries an uploaded avatar image.
type AvatarUploadInput struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ProfileUsecase defines the interface for profile operations.
type ProfileUsecase interface {
	// GetOwn returns the caller's profile.
	GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Save upserts the caller's profile.
	Save(ctx context.Context, userID uuid.UUID, input SaveProfileInput) (*entity.Profile, error)

	// UploadAvatar stores the image and points the profile at its public URL.
	UploadAvatar(ctx context.Context, userID uuid.UUID, input AvatarUploadInput) (string, error)
}
