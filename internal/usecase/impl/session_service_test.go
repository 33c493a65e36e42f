package impl

import (
	"context"
	"testing"
	"time"

	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	mockRepo "pairup/internal/mocks/repository"
	mockSvc "pairup/internal/mocks/service"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		RefreshTokenRepo: refreshTokenRepo,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:          svc,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
	}
}

func TestSessionService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	presented := "old-refresh-token"
	presentedHash := hashRefreshToken(presented)

	fx.tokenService.EXPECT().
		ValidateToken(presented, "refresh").
		Return(&service.TokenClaims{UserID: userID, TokenType: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, presentedHash).
		Return(&entity.RefreshToken{
			UserID:    userID,
			TokenHash: presentedHash,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, presentedHash).Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return(&service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, hashRefreshToken("new-refresh"), token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, presented)

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestSessionService_Refresh_InvalidSignature(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokenService.EXPECT().
		ValidateToken("garbage", "refresh").
		Return(nil, domainerrors.ErrUnauthorized)

	output, err := fx.service.Refresh(context.Background(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("revoked", "refresh").
		Return(&service.TokenClaims{UserID: userID, TokenType: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, hashRefreshToken("revoked")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, "revoked")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	presented := "expired-token"
	presentedHash := hashRefreshToken(presented)

	fx.tokenService.EXPECT().
		ValidateToken(presented, "refresh").
		Return(&service.TokenClaims{UserID: userID, TokenType: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, presentedHash).
		Return(&entity.RefreshToken{
			UserID:    userID,
			TokenHash: presentedHash,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	output, err := fx.service.Refresh(ctx, presented)

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Refresh_LostRotationRace(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	presented := "contested-token"
	presentedHash := hashRefreshToken(presented)

	fx.tokenService.EXPECT().
		ValidateToken(presented, "refresh").
		Return(&service.TokenClaims{UserID: userID, TokenType: "refresh"}, nil)
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, presentedHash).
		Return(&entity.RefreshToken{
			UserID:    userID,
			TokenHash: presentedHash,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	// A concurrent refresh deleted the row between lookup and revoke.
	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, presentedHash).
		Return(repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, presented)

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Logout_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.Logout(context.Background(), "")

	require.NoError(t, err)
}

func TestSessionService_Logout_UnknownTokenTolerated(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, hashRefreshToken("gone")).
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
}
