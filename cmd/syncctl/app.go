package main

import (
	"context"

	"cortex/config"
	logs "cortex/internal/infra/log"
	"cortex/internal/infra/persistence/postgres"
	"cortex/internal/infra/provider/whoop"
	"cortex/internal/infra/provider/withings"
	"cortex/internal/infra/pubsub"
	"cortex/internal/infra/secrets"
	"cortex/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// runApp builds the sync dependency graph, fills targets and runs fn between start and stop.
func runApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) (err error) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTokenRepository,
			postgres.NewSyncLogRepository,
			postgres.NewSyncCursorRepository,
			postgres.NewProfileRepository,
			postgres.NewWhoopRepository,
			postgres.NewWithingsRepository,
			postgres.NewTransactionManager,
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
			impl.NewTokenService,
			impl.NewSyncService,
		),
		secrets.Module,
		pubsub.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		if stopErr := app.Stop(context.WithoutCancel(ctx)); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop application")
		}
	}()

	return fn(ctx)
}
