package service

import "context"

// OAuthIdentity is the provider-attested identity obtained from a completed
// authorization-code exchange.
type OAuthIdentity struct {
	ProviderUserID string
	Email          string
	Name           string
}

// OAuthService exchanges authorization codes for provider identities.
type OAuthService interface {
	ExchangeCode(ctx context.Context, code string) (*OAuthIdentity, error)
}
