package impl

import (
	"context"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	oauthService     *mockSvc.MockOAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		OAuthService:     oauthService,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		oauthService:     oauthService,
	}
}

func expectSessionIssued(fx userServiceFixtures) {
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return(&service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(0)
	fx.refreshTokenRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Email:         "Test@Example.com",
		Password:      "Password123",
		Name:          "Test User",
		TermsAccepted: true,
		AgeConfirmed:  true,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateConsent(ctx, mock.AnythingOfType("*entity.Consent")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	expectSessionIssued(fx)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "test@example.com", output.User.Email)
}

func TestUserService_Signup_ConsentRequired(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Email:         "test@example.com",
		Password:      "Password123",
		TermsAccepted: true,
		AgeConfirmed:  false,
	})

	assert.ErrorIs(t, err, domainerrors.ErrConsentRequired)
	assert.Nil(t, output)
}

func TestUserService_Signup_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Email:         "test@example.com",
		Password:      "weak",
		TermsAccepted: true,
		AgeConfirmed:  true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Nil(t, output)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123").Return(nil)
	fx.hasher.EXPECT().Hash("Password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
				Return(&entity.Authentication{}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		Email:         "taken@example.com",
		Password:      "Password123",
		TermsAccepted: true,
		AgeConfirmed:  true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check("Password123", "hashed").Return(true)
	expectSessionIssued(fx)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
				Return(nil, repository.ErrAuthNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_ExchangeOAuthCode_EmptyCode(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.ExchangeOAuthCode(context.Background(), usecase.OAuthCallbackInput{Code: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
	assert.Nil(t, output)
}

func TestUserService_ExchangeOAuthCode_ProvisionsNewAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	identity := &service.OAuthIdentity{
		ProviderUserID: "google-123",
		Email:          "New@Example.com",
		Name:           "New User",
	}

	fx.oauthService.EXPECT().ExchangeCode(ctx, "authcode").Return(identity, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-123").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateConsent(ctx, mock.AnythingOfType("*entity.Consent")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	expectSessionIssued(fx)

	output, err := fx.service.ExchangeOAuthCode(ctx, usecase.OAuthCallbackInput{Code: "authcode"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}
