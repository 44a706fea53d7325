package postgres

import (
	"context"
	"encoding/json"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// withingsRepository implements repository.WithingsRepository.
type withingsRepository struct {
	db *gorm.DB
}

// NewWithingsRepository is the constructor for withingsRepository.
func NewWithingsRepository(db *gorm.DB) repository.WithingsRepository {
	return &withingsRepository{db: db}
}

func (repo *withingsRepository) UpsertMeasurements(ctx context.Context, measurements []*entity.WithingsMeasurement) error {
	rows := make([]*model.WithingsMeasurementModel, 0, len(measurements))
	for _, measurement := range measurements {
		rows = append(rows, fromWithingsMeasurementDomain(measurement))
	}

	return upsertOnConflict(ctx, repo.db, rows, "withings_grpid", []string{
		"measured_at", "category", "weight_kg", "height_m", "fat_free_mass_kg", "fat_ratio_pct",
		"fat_mass_kg", "muscle_mass_kg", "hydration_kg", "bone_mass_kg", "bmi", "vo2max",
		"visceral_fat", "bmr_kcal", "raw_json", "synced_at",
	}, "withings measurements")
}

func (repo *withingsRepository) LatestHeightAtOrBefore(ctx context.Context, userID uuid.UUID, at time.Time) (*float64, error) {
	var heights []float64

	if err := repo.db.WithContext(ctx).
		Model(&model.WithingsMeasurementModel{}).
		Where("user_id = ? AND height_m IS NOT NULL AND measured_at <= ?", userID, at).
		Order("measured_at DESC").
		Limit(1).
		Pluck("height_m", &heights).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest height")
	}

	if len(heights) == 0 {
		return nil, nil
	}

	return &heights[0], nil
}

func (repo *withingsRepository) FindMeasurements(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WithingsMeasurement, error) {
	rows, err := findInWindow[model.WithingsMeasurementModel](ctx, repo.db, userID, "measured_at", window, "withings measurements")
	if err != nil {
		return nil, err
	}

	measurements := make([]*entity.WithingsMeasurement, 0, len(rows))
	for _, row := range rows {
		measurements = append(measurements, toWithingsMeasurementDomain(row))
	}

	return measurements, nil
}

// --- Mapper Functions ---

func fromWithingsMeasurementDomain(w *entity.WithingsMeasurement) *model.WithingsMeasurementModel {
	return &model.WithingsMeasurementModel{
		UserID:        w.UserID,
		WithingsGrpID: w.WithingsGrpID,
		MeasuredAt:    w.MeasuredAt,
		Category:      w.Category,
		WeightKg:      w.WeightKg,
		HeightM:       w.HeightM,
		FatFreeMassKg: w.FatFreeMassKg,
		FatRatioPct:   w.FatRatioPct,
		FatMassKg:     w.FatMassKg,
		MuscleMassKg:  w.MuscleMassKg,
		HydrationKg:   w.HydrationKg,
		BoneMassKg:    w.BoneMassKg,
		BMI:           w.BMI,
		VO2Max:        w.VO2Max,
		VisceralFat:   w.VisceralFat,
		BMRKcal:       w.BMRKcal,
		RawJSON:       datatypes.JSON(w.RawJSON),
		SyncedAt:      w.SyncedAt,
	}
}

func toWithingsMeasurementDomain(m *model.WithingsMeasurementModel) *entity.WithingsMeasurement {
	return &entity.WithingsMeasurement{
		UserID:        m.UserID,
		WithingsGrpID: m.WithingsGrpID,
		MeasuredAt:    m.MeasuredAt,
		Category:      m.Category,
		WeightKg:      m.WeightKg,
		HeightM:       m.HeightM,
		FatFreeMassKg: m.FatFreeMassKg,
		FatRatioPct:   m.FatRatioPct,
		FatMassKg:     m.FatMassKg,
		MuscleMassKg:  m.MuscleMassKg,
		HydrationKg:   m.HydrationKg,
		BoneMassKg:    m.BoneMassKg,
		BMI:           m.BMI,
		VO2Max:        m.VO2Max,
		VisceralFat:   m.VisceralFat,
		BMRKcal:       m.BMRKcal,
		RawJSON:       json.RawMessage(m.RawJSON),
		SyncedAt:      m.SyncedAt,
	}
}
