package repository

import (
	"context"
	"time"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// WhoopRepository upserts and queries canonical WHOOP rows. Each upsert is keyed on
// the provider-native identifier so replays never create duplicates.
type WhoopRepository interface {
	UpsertCycles(ctx context.Context, cycles []*entity.WhoopCycle) error
	UpsertRecoveries(ctx context.Context, recoveries []*entity.WhoopRecovery) error
	UpsertSleeps(ctx context.Context, sleeps []*entity.WhoopSleep) error
	UpsertWorkouts(ctx context.Context, workouts []*entity.WhoopWorkout) error

	FindCycles(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopCycle, error)
	FindRecoveries(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopRecovery, error)
	FindSleeps(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopSleep, error)
	FindWorkouts(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopWorkout, error)
}

// WithingsRepository upserts and queries scale measurements.
type WithingsRepository interface {
	UpsertMeasurements(ctx context.Context, measurements []*entity.WithingsMeasurement) error

	// LatestHeightAtOrBefore returns the newest stored height (metres) not later than at, or nil.
	LatestHeightAtOrBefore(ctx context.Context, userID uuid.UUID, at time.Time) (*float64, error)

	FindMeasurements(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WithingsMeasurement, error)
}
