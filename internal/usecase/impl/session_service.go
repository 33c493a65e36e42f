package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pairup/internal/delivery/context"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh validates the presented refresh token against both the signature and
// the stored hash, rotates the stored token, and issues a new pair.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, "refresh")
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := hashRefreshToken(refreshToken)
	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if stored.UserID != claims.UserID || time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// Rotate: revoke the presented token before issuing its successor.
	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Lost the rotation race to a concurrent refresh.
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	pair, err := issueSession(ctx, srv.tokenService, srv.refreshTokenRepo, claims.UserID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", claims.UserID))

	return &usecase.RefreshOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token. An unknown token is treated as
// already logged out.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, hashRefreshToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}
