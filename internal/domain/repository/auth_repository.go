package repository

import (
	"context"

	"pairup/internal/domain/entity"
	"pairup/internal/errors"
)

// ErrAuthNotFound is returned when no credential exists for a provider identity.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository manages per-provider credentials.
type AuthRepository interface {
	// CreateAuthentication links a credential to an account.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks up a credential by provider and provider-side ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateConsent records the acknowledgements captured at signup.
	CreateConsent(ctx context.Context, consent *entity.Consent) error
}
