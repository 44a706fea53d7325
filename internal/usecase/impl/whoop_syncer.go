package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type whoopBatch struct {
	cycles     []*service.WhoopCycleRecord
	recoveries []*service.WhoopRecoveryRecord
	sleeps     []*service.WhoopSleepRecord
	workouts   []*service.WhoopWorkoutRecord
}

type whoopSyncer struct {
	api    service.WhoopAPI
	repo   repository.WhoopRepository
	now    func() time.Time
	logger *slog.Logger
}

func newWhoopSyncer(api service.WhoopAPI, repo repository.WhoopRepository, now func() time.Time, logger *slog.Logger) providerSyncer {
	s := &whoopSyncer{api: api, repo: repo, now: now, logger: logger}

	return &syncStrategy[*whoopBatch]{
		provider: entity.ProviderWhoop,
		fetch:    s.fetch,
		upsert:   s.upsert,
	}
}

// fetch pulls the four record types concurrently; pages within a type stay sequential.
func (s *whoopSyncer) fetch(ctx context.Context, accessToken string, window entity.SyncWindow) (*whoopBatch, error) {
	batch := &whoopBatch{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		batch.cycles, err = s.api.FetchCycles(ctx, accessToken, window)

		return err
	})
	g.Go(func() (err error) {
		batch.recoveries, err = s.api.FetchRecoveries(ctx, accessToken, window)

		return err
	})
	g.Go(func() (err error) {
		batch.sleeps, err = s.api.FetchSleeps(ctx, accessToken, window)

		return err
	})
	g.Go(func() (err error) {
		batch.workouts, err = s.api.FetchWorkouts(ctx, accessToken, window)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batch, nil
}

func (s *whoopSyncer) upsert(ctx context.Context, userID uuid.UUID, batch *whoopBatch) int {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	syncedAt := s.now()

	total := upsertRecords(ctx, logger, "cycles", batch.cycles,
		func(rec *service.WhoopCycleRecord) (*entity.WhoopCycle, error) { return toWhoopCycle(userID, rec, syncedAt) },
		s.repo.UpsertCycles)
	total += upsertRecords(ctx, logger, "recovery", batch.recoveries,
		func(rec *service.WhoopRecoveryRecord) (*entity.WhoopRecovery, error) {
			return toWhoopRecovery(userID, rec, syncedAt)
		},
		s.repo.UpsertRecoveries)
	total += upsertRecords(ctx, logger, "sleep", batch.sleeps,
		func(rec *service.WhoopSleepRecord) (*entity.WhoopSleep, error) { return toWhoopSleep(userID, rec, syncedAt) },
		s.repo.UpsertSleeps)
	total += upsertRecords(ctx, logger, "workouts", batch.workouts,
		func(rec *service.WhoopWorkoutRecord) (*entity.WhoopWorkout, error) {
			return toWhoopWorkout(userID, rec, syncedAt)
		},
		s.repo.UpsertWorkouts)

	return total
}

// upsertRecords maps records and writes them in one call. Unmappable records are skipped,
// and a failed write is logged and counts as zero.
func upsertRecords[R, E any](
	ctx context.Context,
	logger *slog.Logger,
	kind string,
	records []R,
	mapFn func(R) (E, error),
	write func(context.Context, []E) error,
) int {
	if len(records) == 0 {
		return 0
	}

	rows := make([]E, 0, len(records))
	for _, rec := range records {
		row, err := mapFn(rec)
		if err != nil {
			logger.WarnContext(ctx, "Skipping unmappable record", slog.String("kind", kind), slog.Any("error", err))

			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return 0
	}

	if err := write(ctx, rows); err != nil {
		logger.ErrorContext(ctx, "Upsert failed, skipping record type",
			slog.String("kind", kind),
			slog.Int("rows", len(rows)),
			slog.Any("error", err),
		)

		return 0
	}

	return len(rows)
}
