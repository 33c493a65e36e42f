package service

import "time"

// AgeTokenService issues and verifies signed age-verification tokens. The
// token carries the verified date of birth so the minimum age can be
// re-checked server-side on every evaluation instead of trusting a client
// flag.
type AgeTokenService interface {
	// Issue signs a token for a date of birth that satisfies the minimum age.
	// Underage dates fail with the domain's underage error.
	Issue(dateOfBirth time.Time) (string, error)

	// Verify checks the signature and expiry and re-checks the minimum age
	// against the embedded date of birth.
	Verify(token string) (time.Time, error)
}
