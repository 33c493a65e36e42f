package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/entity"
	domainerrors "pairup/internal/domain/errors"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	oauthService     service.OAuthService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OAuthService     service.OAuthService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		oauthService:     params.OAuthService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an email/password account. The user row, credential, and
// consent record are written in one transaction; tokens are issued afterwards.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if !input.TermsAccepted || !input.AgeConfirmed {
		return nil, domainerrors.ErrConsentRequired
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var createdUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		user := &entity.User{
			Email: email,
			Name:  input.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return err
		}

		consent := &entity.Consent{
			UserID:        user.ID,
			TermsAccepted: input.TermsAccepted,
			AgeConfirmed:  input.AgeConfirmed,
		}
		if err := authRepo.CreateConsent(ctx, consent); err != nil {
			return err
		}

		createdUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	pair, err := issueSession(ctx, srv.tokenService, srv.refreshTokenRepo, createdUser.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", createdUser.ID))

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         createdUser,
	}, nil
}

// Login verifies an email/password credential and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting login", slog.String("email", email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if !srv.hasher.Check(input.Password, auth.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		user, err = userRepo.FindByID(ctx, auth.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	pair, err := issueSession(ctx, srv.tokenService, srv.refreshTokenRepo, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// ExchangeOAuthCode trades a provider authorization code for a session,
// provisioning the account on first sight.
func (srv *userService) ExchangeOAuthCode(ctx context.Context, input usecase.OAuthCallbackInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting OAuth code exchange")

	if strings.TrimSpace(input.Code) == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	identity, err := srv.oauthService.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth exchange failed", slog.Any("error", err))

		return nil, err
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, identity.ProviderUserID)
		if err == nil {
			user, err = userRepo.FindByID(ctx, auth.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load user")
			}

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// First sight of this provider identity: provision the account.
		user = &entity.User{
			Email: strings.ToLower(identity.Email),
			Name:  identity.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		newAuth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: identity.ProviderUserID,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return err
		}

		consent := &entity.Consent{
			UserID:        user.ID,
			TermsAccepted: true,
			AgeConfirmed:  true,
		}

		return authRepo.CreateConsent(ctx, consent)
	})
	if err != nil {
		srv.log(ctx).Error("OAuth provisioning failed", slog.Any("error", err))

		return nil, err
	}

	pair, err := issueSession(ctx, srv.tokenService, srv.refreshTokenRepo, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
