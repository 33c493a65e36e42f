package usecase

import (
	"context"
	"time"

	"pairup/internal/domain/policy"
)

// EvaluateRouteInput carries the raw facts presented with an evaluation
// request. Tokens arrive unverified; the usecase resolves them into facts.
type EvaluateRouteInput struct {
	Path        string
	AgeToken    string
	AccessToken string
}

// VerifyAgeOutput returns the signed age token and its lifetime.
type VerifyAgeOutput struct {
	Token     string
	ExpiresIn time.Duration
}

// AccessUsecase defines the interface for route policy evaluation and the
// age gate.
type AccessUsecase interface {
	// EvaluateRoute resolves the session and profile facts and applies the
	// pure policy table to the path.
	EvaluateRoute(ctx context.Context, input EvaluateRouteInput) (*policy.Decision, error)

	// VerifyAge validates a date of birth against the minimum age and issues
	// the signed age-verification token.
	VerifyAge(ctx context.Context, dateOfBirth time.Time) (*VerifyAgeOutput, error)
}
