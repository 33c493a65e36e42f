package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims are the validated claims of an access or refresh token.
type TokenClaims struct {
	UserID    uuid.UUID
	TokenType string
	ExpiresAt time.Time
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateTokens issues a new access/refresh pair for the account.
	GenerateTokens(userID uuid.UUID) (*TokenPair, error)

	// ValidateToken parses and verifies a token of the expected type
	// ("access" or "refresh").
	ValidateToken(token, expectedType string) (*TokenClaims, error)

	// GetRefreshTokenDuration exposes the refresh token lifetime so the
	// persistence layer can set matching expirations.
	GetRefreshTokenDuration() time.Duration
}
