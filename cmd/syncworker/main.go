package main

import (
	"context"
	"log/slog"
	"os"

	"cortex/config"
	"cortex/internal/delivery"
	"cortex/internal/delivery/worker"
	"cortex/internal/delivery/worker/handler"
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
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		// Sync needs a publisher even though the worker never dispatches
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
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
