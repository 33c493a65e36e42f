package impl

import (
	"context"
	"log/slog"
	"time"

	"pairup/config"
	deliverycontext "pairup/internal/delivery/context"
	"pairup/internal/domain/policy"
	"pairup/internal/domain/repository"
	"pairup/internal/domain/service"
	"pairup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface. It resolves the raw
// tokens into facts and delegates the verdict to the pure policy table.
type accessService struct {
	profileRepo     repository.ProfileRepository
	tokenService    service.TokenService
	ageTokenService service.AgeTokenService
	ageTokenTTL     time.Duration
	logger          *slog.Logger
}

// AccessServiceParams holds dependencies for accessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	ProfileRepo     repository.ProfileRepository
	TokenService    service.TokenService
	AgeTokenService service.AgeTokenService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	ageTokenTTL := 30 * 24 * time.Hour
	if params.Config != nil && params.Config.AgeGate != nil && params.Config.AgeGate.TokenTTL > 0 {
		ageTokenTTL = params.Config.AgeGate.TokenTTL
	}

	return &accessService{
		profileRepo:     params.ProfileRepo,
		tokenService:    params.TokenService,
		ageTokenService: params.AgeTokenService,
		ageTokenTTL:     ageTokenTTL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EvaluateRoute resolves the session and profile facts for the request and
// applies the rule table. Invalid tokens resolve to absent facts; a failed
// profile lookup propagates instead of silently deciding.
func (srv *accessService) EvaluateRoute(ctx context.Context, input usecase.EvaluateRouteInput) (*policy.Decision, error) {
	facts := policy.Facts{}

	if input.AgeToken != "" {
		if _, err := srv.ageTokenService.Verify(input.AgeToken); err == nil {
			facts.AgeVerified = true
		}
	}

	if input.AccessToken != "" {
		claims, err := srv.tokenService.ValidateToken(input.AccessToken, "access")
		if err == nil {
			facts.SessionPresent = true

			exists, err := srv.profileRepo.Exists(ctx, claims.UserID)
			if err != nil {
				srv.log(ctx).Error("Profile existence check failed",
					slog.Any("userID", claims.UserID), slog.Any("error", err))

				return nil, errors.Wrap(err, "failed to check profile existence")
			}
			facts.ProfileExists = exists
		}
	}

	decision := policy.Evaluate(policy.CategoryForPath(input.Path), facts)

	return &decision, nil
}

// VerifyAge validates a date of birth and issues the signed age token.
func (srv *accessService) VerifyAge(ctx context.Context, dateOfBirth time.Time) (*usecase.VerifyAgeOutput, error) {
	token, err := srv.ageTokenService.Issue(dateOfBirth)
	if err != nil {
		srv.log(ctx).Info("Age verification rejected", slog.Any("error", err))

		return nil, err
	}

	return &usecase.VerifyAgeOutput{
		Token:     token,
		ExpiresIn: srv.ageTokenTTL,
	}, nil
}
