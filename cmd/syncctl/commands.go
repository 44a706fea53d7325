package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cortex/internal/domain/entity"
	"cortex/internal/infra/persistence/postgres"
	"cortex/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "syncctl",
		Short:         "Operate the Cortex sync engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSyncCommand())
	cmd.AddCommand(newSyncAllCommand())
	cmd.AddCommand(newMigrateCommand())

	return cmd
}

type syncOptions struct {
	userID   string
	provider string
	initial  bool
}

func newSyncCommand() *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync one user, for one provider or every connected provider",
		Example: `  syncctl sync --user 6f1c... --provider whoop
  syncctl sync --user 6f1c... --initial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(opts.userID)
			if err != nil {
				return errors.Wrapf(err, "invalid --user %q", opts.userID)
			}

			var provider entity.Provider
			if opts.provider != "" {
				if provider, err = entity.ParseProvider(opts.provider); err != nil {
					return errors.WithStack(err)
				}
			}

			var syncUC usecase.SyncUsecase

			return runApp(signalContext(cmd), func(ctx context.Context) error {
				if provider != "" {
					return writeJSON(cmd.OutOrStdout(), syncUC.Sync(ctx, userID, provider, opts.initial))
				}

				results, err := syncUC.SyncUser(ctx, userID, opts.initial)
				if err != nil {
					return errors.WithStack(err)
				}

				return writeJSON(cmd.OutOrStdout(), results)
			}, &syncUC)
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "user UUID (required)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "whoop or withings; all connected providers when empty")
	cmd.Flags().BoolVar(&opts.initial, "initial", false, "ignore the cursor and pull the full lookback window")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newSyncAllCommand() *cobra.Command {
	var dispatch bool

	cmd := &cobra.Command{
		Use:   "sync-all",
		Short: "Sync every connected (user, provider) pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var syncUC usecase.SyncUsecase

			return runApp(signalContext(cmd), func(ctx context.Context) error {
				if dispatch {
					dispatched, err := syncUC.DispatchAll(ctx)
					if err != nil {
						return errors.WithStack(err)
					}

					return writeJSON(cmd.OutOrStdout(), map[string]int{"dispatched": dispatched})
				}

				result, err := syncUC.SyncAll(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				return writeJSON(cmd.OutOrStdout(), result)
			}, &syncUC)
		},
	}

	cmd.Flags().BoolVar(&dispatch, "dispatch", false, "publish sync requests to Pub/Sub instead of syncing in-process")

	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			return runApp(signalContext(cmd), func(ctx context.Context) error {
				return postgres.Migrate(ctx, db, logger)
			}, &db, &logger)
		},
	}
}

func signalContext(cmd *cobra.Command) context.Context {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	cobra.OnFinalize(stop)

	return ctx
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(append(out, '\n'))

	return errors.WithStack(err)
}
