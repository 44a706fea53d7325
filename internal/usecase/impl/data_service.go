package impl

import (
	"context"
	"log/slog"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// dataService implements the DataUsecase interface.
type dataService struct {
	whoopRepo    repository.WhoopRepository
	withingsRepo repository.WithingsRepository
	logger       *slog.Logger
}

// NewDataService is the constructor for dataService.
func NewDataService(whoopRepo repository.WhoopRepository, withingsRepo repository.WithingsRepository, logger *slog.Logger) usecase.DataUsecase {
	return &dataService{
		whoopRepo:    whoopRepo,
		withingsRepo: withingsRepo,
		logger:       logger,
	}
}

func validateWindow(window entity.SyncWindow) error {
	if window.Start.IsZero() || window.End.IsZero() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("start and end are required"))
	}
	if !window.Start.Before(window.End) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("start must be before end"))
	}

	return nil
}

// Whoop loads every WHOOP record type for the window concurrently.
func (srv *dataService) Whoop(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) (*entity.WhoopData, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).DebugContext(ctx, "Loading WHOOP data",
		slog.String("userID", userID.String()),
		slog.Time("start", window.Start),
		slog.Time("end", window.End),
	)

	data := &entity.WhoopData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Cycles, err = srv.whoopRepo.FindCycles(ctx, userID, window)

		return err
	})
	g.Go(func() (err error) {
		data.Recoveries, err = srv.whoopRepo.FindRecoveries(ctx, userID, window)

		return err
	})
	g.Go(func() (err error) {
		data.Sleeps, err = srv.whoopRepo.FindSleeps(ctx, userID, window)

		return err
	})
	g.Go(func() (err error) {
		data.Workouts, err = srv.whoopRepo.FindWorkouts(ctx, userID, window)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load whoop data")
	}

	return data, nil
}

func (srv *dataService) Withings(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WithingsMeasurement, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	measurements, err := srv.withingsRepo.FindMeasurements(ctx, userID, window)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load withings data")
	}

	return measurements, nil
}
