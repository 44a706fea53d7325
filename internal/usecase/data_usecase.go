package usecase

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// DataUsecase serves stored records for dashboard range queries.
type DataUsecase interface {
	Whoop(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) (*entity.WhoopData, error)
	Withings(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WithingsMeasurement, error)
}
