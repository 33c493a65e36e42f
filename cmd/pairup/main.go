package main

import (
	"context"
	"log/slog"
	"os"

	"pairup/config"
	"pairup/internal/delivery"
	"pairup/internal/delivery/http"
	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/router/handler"
	"pairup/internal/infra/annotation"
	"pairup/internal/infra/auth"
	"pairup/internal/infra/auth/google"
	logs "pairup/internal/infra/log"
	"pairup/internal/infra/persistence/postgres"
	"pairup/internal/infra/storage"
	"pairup/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewBucket,
		storage.NewObjectStorage,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewPairingRepository,
			postgres.NewEngagementRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAgeTokenService,
			google.NewOAuthService,
			annotation.NewGeminiAnnotator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewPairingService,
			impl.NewEngagementService,
			impl.NewAnnotationService,
			impl.NewAccessService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccessHandler,
			handler.NewProfileHandler,
			handler.NewPairingHandler,
			handler.NewEngagementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
