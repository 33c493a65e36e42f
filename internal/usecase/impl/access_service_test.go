package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/policy"
	"pairup/internal/domain/service"
	mockRepo "pairup/internal/mocks/repository"
	mockSvc "pairup/internal/mocks/service"
	"pairup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessServiceFixtures struct {
	service         usecase.AccessUsecase
	profileRepo     *mockRepo.MockProfileRepository
	tokenService    *mockSvc.MockTokenService
	ageTokenService *mockSvc.MockAgeTokenService
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	ageTokenService := mockSvc.NewMockAgeTokenService(t)

	svc := NewAccessService(AccessServiceParams{
		ProfileRepo:     profileRepo,
		TokenService:    tokenService,
		AgeTokenService: ageTokenService,
		Logger:          newDiscardLogger(),
	})

	return accessServiceFixtures{
		service:         svc,
		profileRepo:     profileRepo,
		tokenService:    tokenService,
		ageTokenService: ageTokenService,
	}
}

func TestAccessService_EvaluateRoute_NoTokensRedirectsToAgeGate(t *testing.T) {
	fx := createTestAccessService(t)

	decision, err := fx.service.EvaluateRoute(context.Background(), usecase.EvaluateRouteInput{
		Path: "/feed",
	})

	require.NoError(t, err)
	assert.Equal(t, policy.ActionRedirect, decision.Action)
	assert.Equal(t, policy.TargetAgeGate, decision.Target)
}

func TestAccessService_EvaluateRoute_InvalidAgeTokenTreatedAsAbsent(t *testing.T) {
	fx := createTestAccessService(t)

	fx.ageTokenService.EXPECT().
		Verify("tampered").
		Return(time.Time{}, domainerrors.ErrAgeTokenInvalid)

	decision, err := fx.service.EvaluateRoute(context.Background(), usecase.EvaluateRouteInput{
		Path:     "/feed",
		AgeToken: "tampered",
	})

	require.NoError(t, err)
	assert.Equal(t, policy.ActionRedirect, decision.Action)
	assert.Equal(t, policy.TargetAgeGate, decision.Target)
}

func TestAccessService_EvaluateRoute_AgeVerifiedWithoutSession(t *testing.T) {
	fx := createTestAccessService(t)

	fx.ageTokenService.EXPECT().Verify("age-token").Return(time.Now().AddDate(-25, 0, 0), nil)

	decision, err := fx.service.EvaluateRoute(context.Background(), usecase.EvaluateRouteInput{
		Path:     "/feed",
		AgeToken: "age-token",
	})

	require.NoError(t, err)
	assert.Equal(t, policy.ActionRedirect, decision.Action)
	assert.Equal(t, policy.TargetLogin, decision.Target)
}

func TestAccessService_EvaluateRoute_SessionWithProfileAllowed(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ageTokenService.EXPECT().Verify("age-token").Return(time.Now().AddDate(-25, 0, 0), nil)
	fx.tokenService.EXPECT().
		ValidateToken("access-token", "access").
		Return(&service.TokenClaims{UserID: userID, TokenType: "access"}, nil)
	fx.profileRepo.EXPECT().Exists(ctx, userID).Return(true, nil)

	decision, err := fx.service.EvaluateRoute(ctx, usecase.EvaluateRouteInput{
		Path:        "/pairings/123",
		AgeToken:    "age-token",
		AccessToken: "access-token",
	})

	require.NoError(t, err)
	assert.Equal(t, policy.ActionAllow, decision.Action)
}

func TestAccessService_EvaluateRoute_SessionWithoutProfileOnboards(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ageTokenService.EXPECT().Verify("age-token").Return(time.Now().AddDate(-25, 0, 0), nil)
	fx.tokenService.EXPECT().
		ValidateToken("access-token", "access").
		Return(&service.TokenClaims{UserID: userID, TokenType: "access"}, nil)
	fx.profileRepo.EXPECT().Exists(ctx, userID).Return(false, nil)

	decision, err := fx.service.EvaluateRoute(ctx, usecase.EvaluateRouteInput{
		Path:        "/feed",
		AgeToken:    "age-token",
		AccessToken: "access-token",
	})

	require.NoError(t, err)
	assert.Equal(t, policy.ActionRedirect, decision.Action)
	assert.Equal(t, policy.TargetSetupProfile, decision.Target)
}

func TestAccessService_EvaluateRoute_ProfileLookupErrorPropagates(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ageTokenService.EXPECT().Verify("age-token").Return(time.Now().AddDate(-25, 0, 0), nil)
	fx.tokenService.EXPECT().
		ValidateToken("access-token", "access").
		Return(&service.TokenClaims{UserID: userID, TokenType: "access"}, nil)
	fx.profileRepo.EXPECT().Exists(ctx, userID).Return(false, assert.AnError)

	decision, err := fx.service.EvaluateRoute(ctx, usecase.EvaluateRouteInput{
		Path:        "/feed",
		AgeToken:    "age-token",
		AccessToken: "access-token",
	})

	assert.Error(t, err)
	assert.Nil(t, decision)
}

func TestAccessService_VerifyAge_IssuesToken(t *testing.T) {
	fx := createTestAccessService(t)

	dob := time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC)

	fx.ageTokenService.EXPECT().Issue(dob).Return("signed-age-token", nil)

	output, err := fx.service.VerifyAge(context.Background(), dob)

	require.NoError(t, err)
	assert.Equal(t, "signed-age-token", output.Token)
	assert.Equal(t, 30*24*time.Hour, output.ExpiresIn)
}

func TestAccessService_VerifyAge_Underage(t *testing.T) {
	fx := createTestAccessService(t)

	dob := time.Now().AddDate(-16, 0, 0)

	fx.ageTokenService.EXPECT().Issue(dob).Return("", domainerrors.ErrUnderage)

	output, err := fx.service.VerifyAge(context.Background(), dob)

	assert.ErrorIs(t, err, domainerrors.ErrUnderage)
	assert.Nil(t, output)
}
