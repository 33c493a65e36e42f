// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pairup/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Email         string
	Password      string
	Name          string
	TermsAccepted bool
	AgeConfirmed  bool
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthCallbackInput carries the provider authorization code.
type OAuthCallbackInput struct {
	Code string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens and the account after a successful
// signup, login, or OAuth exchange.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	ExchangeOAuthCode(ctx context.Context, input OAuthCallbackInput) (*AuthOutput, error)
}
