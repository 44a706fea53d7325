package main

import (
	"context"
	"log/slog"
	"os"

	"cortex/config"
	"cortex/internal/delivery"
	"cortex/internal/delivery/http"
	"cortex/internal/delivery/http/middleware"
	"cortex/internal/delivery/http/router/handler"
	"cortex/internal/infra/auth"
	logs "cortex/internal/infra/log"
	"cortex/internal/infra/persistence/postgres"
	"cortex/internal/infra/provider/whoop"
	"cortex/internal/infra/provider/withings"
	"cortex/internal/infra/pubsub"
	"cortex/internal/infra/secrets"
	"cortex/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		secrets.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTokenRepository,
			postgres.NewSyncLogRepository,
			postgres.NewSyncCursorRepository,
			postgres.NewProfileRepository,
			postgres.NewWhoopRepository,
			postgres.NewWithingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			auth.NewSecretVerifier,
			auth.NewStateStore,
			whoop.NewClient,
			withings.NewClient,
			fx.Annotate(
				whoop.NewOAuth,
				fx.ResultTags(`group:"provider_oauth"`),
			),
			fx.Annotate(
				withings.NewOAuth,
				fx.ResultTags(`group:"provider_oauth"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenService,
			impl.NewSyncService,
			impl.NewConnectionService,
			impl.NewProfileService,
			impl.NewDataService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewCronMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConnectionHandler,
			handler.NewSyncHandler,
			handler.NewProfileHandler,
			handler.NewDataHandler,
			handler.NewCronHandler,
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
