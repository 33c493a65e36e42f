// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"pairup/internal/domain/entity"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// hashRefreshToken derives the stored digest of a refresh token. Only this
// hash ever touches the database.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// issueSession generates a token pair and persists the refresh token hash.
func issueSession(
	ctx context.Context,
	tokenService service.TokenService,
	refreshTokenRepo repository.RefreshTokenRepository,
	userID uuid.UUID,
) (*service.TokenPair, error) {
	pair, err := tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefreshToken(pair.RefreshToken),
		ExpiresAt: time.Now().Add(tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return pair, nil
}
