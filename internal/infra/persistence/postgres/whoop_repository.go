package postgres

import (
	"context"
	"encoding/json"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 200

// whoopRepository implements repository.WhoopRepository.
type whoopRepository struct {
	db *gorm.DB
}

// NewWhoopRepository is the constructor for whoopRepository.
func NewWhoopRepository(db *gorm.DB) repository.WhoopRepository {
	return &whoopRepository{db: db}
}

// upsertOnConflict writes rows in batches keyed by (user_id, key), overwriting updateColumns.
func upsertOnConflict[M any](ctx context.Context, db *gorm.DB, rows []*M, key string, updateColumns []string, what string) error {
	if len(rows) == 0 {
		return nil
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: key}},
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		CreateInBatches(rows, upsertBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required " + what + " field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert "+what)
	}

	return nil
}

func (repo *whoopRepository) UpsertCycles(ctx context.Context, cycles []*entity.WhoopCycle) error {
	rows := make([]*model.WhoopCycleModel, 0, len(cycles))
	for _, cycle := range cycles {
		rows = append(rows, fromWhoopCycleDomain(cycle))
	}

	return upsertOnConflict(ctx, repo.db, rows, "whoop_cycle_id", []string{
		"start_time", "end_time", "timezone_offset", "score_state", "strain", "kilojoule",
		"average_heart_rate", "max_heart_rate", "calories_kcal", "raw_json", "synced_at",
	}, "whoop cycles")
}

func (repo *whoopRepository) UpsertRecoveries(ctx context.Context, recoveries []*entity.WhoopRecovery) error {
	rows := make([]*model.WhoopRecoveryModel, 0, len(recoveries))
	for _, recovery := range recoveries {
		rows = append(rows, fromWhoopRecoveryDomain(recovery))
	}

	return upsertOnConflict(ctx, repo.db, rows, "whoop_cycle_id", []string{
		"whoop_sleep_id", "score_state", "recovery_score", "resting_heart_rate", "hrv_rmssd_milli",
		"spo2_percentage", "skin_temp_celsius", "user_calibrating", "created_at", "raw_json", "synced_at",
	}, "whoop recovery")
}

func (repo *whoopRepository) UpsertSleeps(ctx context.Context, sleeps []*entity.WhoopSleep) error {
	rows := make([]*model.WhoopSleepModel, 0, len(sleeps))
	for _, sleep := range sleeps {
		rows = append(rows, fromWhoopSleepDomain(sleep))
	}

	return upsertOnConflict(ctx, repo.db, rows, "whoop_sleep_id", []string{
		"start_time", "end_time", "is_nap", "score_state", "total_in_bed_milli", "total_awake_milli",
		"total_light_sleep_milli", "total_slow_wave_sleep_milli", "total_rem_sleep_milli",
		"sleep_cycle_count", "disturbance_count", "respiratory_rate", "sleep_performance_percentage",
		"sleep_consistency_percentage", "sleep_efficiency_percentage", "raw_json", "synced_at",
	}, "whoop sleep")
}

func (repo *whoopRepository) UpsertWorkouts(ctx context.Context, workouts []*entity.WhoopWorkout) error {
	rows := make([]*model.WhoopWorkoutModel, 0, len(workouts))
	for _, workout := range workouts {
		rows = append(rows, fromWhoopWorkoutDomain(workout))
	}

	return upsertOnConflict(ctx, repo.db, rows, "whoop_workout_id", []string{
		"start_time", "end_time", "sport_id", "score_state", "strain", "average_heart_rate",
		"max_heart_rate", "kilojoule", "calories_kcal", "raw_json", "synced_at",
	}, "whoop workouts")
}

// findInWindow loads a user's rows whose timeColumn falls in [window.Start, window.End).
func findInWindow[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, timeColumn string, window entity.SyncWindow, what string) ([]*M, error) {
	var rows []*M

	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(timeColumn+" >= ? AND "+timeColumn+" < ?", window.Start, window.End).
		Order(timeColumn + " ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+what)
	}

	return rows, nil
}

func (repo *whoopRepository) FindCycles(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopCycle, error) {
	rows, err := findInWindow[model.WhoopCycleModel](ctx, repo.db, userID, "start_time", window, "whoop cycles")
	if err != nil {
		return nil, err
	}

	cycles := make([]*entity.WhoopCycle, 0, len(rows))
	for _, row := range rows {
		cycles = append(cycles, toWhoopCycleDomain(row))
	}

	return cycles, nil
}

func (repo *whoopRepository) FindRecoveries(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopRecovery, error) {
	rows, err := findInWindow[model.WhoopRecoveryModel](ctx, repo.db, userID, "created_at", window, "whoop recovery")
	if err != nil {
		return nil, err
	}

	recoveries := make([]*entity.WhoopRecovery, 0, len(rows))
	for _, row := range rows {
		recoveries = append(recoveries, toWhoopRecoveryDomain(row))
	}

	return recoveries, nil
}

func (repo *whoopRepository) FindSleeps(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopSleep, error) {
	rows, err := findInWindow[model.WhoopSleepModel](ctx, repo.db, userID, "start_time", window, "whoop sleep")
	if err != nil {
		return nil, err
	}

	sleeps := make([]*entity.WhoopSleep, 0, len(rows))
	for _, row := range rows {
		sleeps = append(sleeps, toWhoopSleepDomain(row))
	}

	return sleeps, nil
}

func (repo *whoopRepository) FindWorkouts(ctx context.Context, userID uuid.UUID, window entity.SyncWindow) ([]*entity.WhoopWorkout, error) {
	rows, err := findInWindow[model.WhoopWorkoutModel](ctx, repo.db, userID, "start_time", window, "whoop workouts")
	if err != nil {
		return nil, err
	}

	workouts := make([]*entity.WhoopWorkout, 0, len(rows))
	for _, row := range rows {
		workouts = append(workouts, toWhoopWorkoutDomain(row))
	}

	return workouts, nil
}

// --- Mapper Functions ---

func fromWhoopCycleDomain(c *entity.WhoopCycle) *model.WhoopCycleModel {
	return &model.WhoopCycleModel{
		UserID:           c.UserID,
		WhoopCycleID:     c.WhoopCycleID,
		Start:            c.Start,
		End:              c.End,
		TimezoneOffset:   c.TimezoneOffset,
		ScoreState:       c.ScoreState,
		Strain:           c.Strain,
		Kilojoule:        c.Kilojoule,
		AverageHeartRate: c.AverageHeartRate,
		MaxHeartRate:     c.MaxHeartRate,
		CaloriesKcal:     c.CaloriesKcal,
		RawJSON:          datatypes.JSON(c.RawJSON),
		SyncedAt:         c.SyncedAt,
	}
}

func toWhoopCycleDomain(m *model.WhoopCycleModel) *entity.WhoopCycle {
	return &entity.WhoopCycle{
		UserID:           m.UserID,
		WhoopCycleID:     m.WhoopCycleID,
		Start:            m.Start,
		End:              m.End,
		TimezoneOffset:   m.TimezoneOffset,
		ScoreState:       m.ScoreState,
		Strain:           m.Strain,
		Kilojoule:        m.Kilojoule,
		AverageHeartRate: m.AverageHeartRate,
		MaxHeartRate:     m.MaxHeartRate,
		CaloriesKcal:     m.CaloriesKcal,
		RawJSON:          json.RawMessage(m.RawJSON),
		SyncedAt:         m.SyncedAt,
	}
}

func fromWhoopRecoveryDomain(r *entity.WhoopRecovery) *model.WhoopRecoveryModel {
	return &model.WhoopRecoveryModel{
		UserID:           r.UserID,
		WhoopCycleID:     r.WhoopCycleID,
		WhoopSleepID:     r.WhoopSleepID,
		ScoreState:       r.ScoreState,
		RecoveryScore:    r.RecoveryScore,
		RestingHeartRate: r.RestingHeartRate,
		HRVRmssdMilli:    r.HRVRmssdMilli,
		SpO2Percentage:   r.SpO2Percentage,
		SkinTempCelsius:  r.SkinTempCelsius,
		UserCalibrating:  r.UserCalibrating,
		RecordedAt:       r.RecordedAt,
		RawJSON:          datatypes.JSON(r.RawJSON),
		SyncedAt:         r.SyncedAt,
	}
}

func toWhoopRecoveryDomain(m *model.WhoopRecoveryModel) *entity.WhoopRecovery {
	return &entity.WhoopRecovery{
		UserID:           m.UserID,
		WhoopCycleID:     m.WhoopCycleID,
		WhoopSleepID:     m.WhoopSleepID,
		ScoreState:       m.ScoreState,
		RecoveryScore:    m.RecoveryScore,
		RestingHeartRate: m.RestingHeartRate,
		HRVRmssdMilli:    m.HRVRmssdMilli,
		SpO2Percentage:   m.SpO2Percentage,
		SkinTempCelsius:  m.SkinTempCelsius,
		UserCalibrating:  m.UserCalibrating,
		RecordedAt:       m.RecordedAt,
		RawJSON:          json.RawMessage(m.RawJSON),
		SyncedAt:         m.SyncedAt,
	}
}

func fromWhoopSleepDomain(s *entity.WhoopSleep) *model.WhoopSleepModel {
	return &model.WhoopSleepModel{
		UserID:                     s.UserID,
		WhoopSleepID:               s.WhoopSleepID,
		Start:                      s.Start,
		End:                        s.End,
		IsNap:                      s.IsNap,
		ScoreState:                 s.ScoreState,
		TotalInBedMilli:            s.TotalInBedMilli,
		TotalAwakeMilli:            s.TotalAwakeMilli,
		TotalLightSleepMilli:       s.TotalLightSleepMilli,
		TotalSlowWaveSleepMilli:    s.TotalSlowWaveSleepMilli,
		TotalREMSleepMilli:         s.TotalREMSleepMilli,
		SleepCycleCount:            s.SleepCycleCount,
		DisturbanceCount:           s.DisturbanceCount,
		RespiratoryRate:            s.RespiratoryRate,
		SleepPerformancePercentage: s.SleepPerformancePercentage,
		SleepConsistencyPercentage: s.SleepConsistencyPercentage,
		SleepEfficiencyPercentage:  s.SleepEfficiencyPercentage,
		RawJSON:                    datatypes.JSON(s.RawJSON),
		SyncedAt:                   s.SyncedAt,
	}
}

func toWhoopSleepDomain(m *model.WhoopSleepModel) *entity.WhoopSleep {
	return &entity.WhoopSleep{
		UserID:                     m.UserID,
		WhoopSleepID:               m.WhoopSleepID,
		Start:                      m.Start,
		End:                        m.End,
		IsNap:                      m.IsNap,
		ScoreState:                 m.ScoreState,
		TotalInBedMilli:            m.TotalInBedMilli,
		TotalAwakeMilli:            m.TotalAwakeMilli,
		TotalLightSleepMilli:       m.TotalLightSleepMilli,
		TotalSlowWaveSleepMilli:    m.TotalSlowWaveSleepMilli,
		TotalREMSleepMilli:         m.TotalREMSleepMilli,
		SleepCycleCount:            m.SleepCycleCount,
		DisturbanceCount:           m.DisturbanceCount,
		RespiratoryRate:            m.RespiratoryRate,
		SleepPerformancePercentage: m.SleepPerformancePercentage,
		SleepConsistencyPercentage: m.SleepConsistencyPercentage,
		SleepEfficiencyPercentage:  m.SleepEfficiencyPercentage,
		RawJSON:                    json.RawMessage(m.RawJSON),
		SyncedAt:                   m.SyncedAt,
	}
}

func fromWhoopWorkoutDomain(w *entity.WhoopWorkout) *model.WhoopWorkoutModel {
	return &model.WhoopWorkoutModel{
		UserID:           w.UserID,
		WhoopWorkoutID:   w.WhoopWorkoutID,
		Start:            w.Start,
		End:              w.End,
		SportID:          w.SportID,
		ScoreState:       w.ScoreState,
		Strain:           w.Strain,
		AverageHeartRate: w.AverageHeartRate,
		MaxHeartRate:     w.MaxHeartRate,
		Kilojoule:        w.Kilojoule,
		CaloriesKcal:     w.CaloriesKcal,
		RawJSON:          datatypes.JSON(w.RawJSON),
		SyncedAt:         w.SyncedAt,
	}
}

func toWhoopWorkoutDomain(m *model.WhoopWorkoutModel) *entity.WhoopWorkout {
	return &entity.WhoopWorkout{
		UserID:           m.UserID,
		WhoopWorkoutID:   m.WhoopWorkoutID,
		Start:            m.Start,
		End:              m.End,
		SportID:          m.SportID,
		ScoreState:       m.ScoreState,
		Strain:           m.Strain,
		AverageHeartRate: m.AverageHeartRate,
		MaxHeartRate:     m.MaxHeartRate,
		Kilojoule:        m.Kilojoule,
		CaloriesKcal:     m.CaloriesKcal,
		RawJSON:          json.RawMessage(m.RawJSON),
		SyncedAt:         m.SyncedAt,
	}
}
