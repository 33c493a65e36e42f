package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how an account authenticates.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication links a User to one credential at one provider.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Email address for the email provider, subject ID for OAuth.
	PasswordHash   string // Only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken is a persisted session handle. Only a hash of the issued token
// is stored; presenting a refresh token means proving knowledge of a preimage.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Consent records the legal acknowledgements collected at signup.
type Consent struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TermsAccepted bool
	AgeConfirmed  bool
	CreatedAt     time.Time
}
