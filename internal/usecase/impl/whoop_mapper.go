package impl

import (
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/measure"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// --- WHOOP Mapper Functions ---

func parseWhoopTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid %s %q", field, value)
	}

	return t.UTC(), nil
}

func ptr[T any](v T) *T {
	return &v
}

func toWhoopCycle(userID uuid.UUID, rec *service.WhoopCycleRecord, syncedAt time.Time) (*entity.WhoopCycle, error) {
	if rec.ID == "" {
		return nil, errors.New("cycle without id")
	}

	start, err := parseWhoopTime("start", rec.Start)
	if err != nil {
		return nil, err
	}

	cycle := &entity.WhoopCycle{
		UserID:       userID,
		WhoopCycleID: string(rec.ID),
		Start:        start,
		ScoreState:   rec.ScoreState,
		RawJSON:      rec.Raw,
		SyncedAt:     syncedAt,
	}

	// An open cycle has no end yet.
	if rec.End != nil && *rec.End != "" {
		end, err := parseWhoopTime("end", *rec.End)
		if err != nil {
			return nil, err
		}
		cycle.End = &end
	}
	if rec.TimezoneOffset != nil {
		cycle.TimezoneOffset = *rec.TimezoneOffset
	}

	if score := rec.Score; score != nil {
		cycle.Strain = ptr(score.Strain)
		cycle.Kilojoule = ptr(score.Kilojoule)
		cycle.AverageHeartRate = ptr(score.AverageHeartRate)
		cycle.MaxHeartRate = ptr(score.MaxHeartRate)
		cycle.CaloriesKcal = measure.KilojoulesToKcal(cycle.Kilojoule)
	}

	return cycle, nil
}

func toWhoopRecovery(userID uuid.UUID, rec *service.WhoopRecoveryRecord, syncedAt time.Time) (*entity.WhoopRecovery, error) {
	if rec.CycleID == "" {
		return nil, errors.New("recovery without cycle id")
	}

	recordedAt := syncedAt
	if rec.CreatedAt != "" {
		t, err := parseWhoopTime("created_at", rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		recordedAt = t
	}

	recovery := &entity.WhoopRecovery{
		UserID:          userID,
		WhoopCycleID:    string(rec.CycleID),
		WhoopSleepID:    string(rec.SleepID),
		ScoreState:      rec.ScoreState,
		UserCalibrating: ptr(false),
		RecordedAt:      recordedAt,
		RawJSON:         rec.Raw,
		SyncedAt:        syncedAt,
	}

	if score := rec.Score; score != nil {
		recovery.RecoveryScore = ptr(score.RecoveryScore)
		recovery.RestingHeartRate = ptr(score.RestingHeartRate)
		recovery.HRVRmssdMilli = ptr(score.HRVRmssdMilli)
		recovery.SpO2Percentage = score.SpO2Percentage
		recovery.SkinTempCelsius = score.SkinTempCelsius
		recovery.UserCalibrating = ptr(score.UserCalibrating)
	}

	return recovery, nil
}

func toWhoopSleep(userID uuid.UUID, rec *service.WhoopSleepRecord, syncedAt time.Time) (*entity.WhoopSleep, error) {
	if rec.ID == "" {
		return nil, errors.New("sleep without id")
	}

	start, err := parseWhoopTime("start", rec.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseWhoopTime("end", rec.End)
	if err != nil {
		return nil, err
	}

	sleep := &entity.WhoopSleep{
		UserID:       userID,
		WhoopSleepID: string(rec.ID),
		Start:        start,
		End:          end,
		IsNap:        rec.Nap,
		ScoreState:   rec.ScoreState,
		RawJSON:      rec.Raw,
		SyncedAt:     syncedAt,
	}

	if score := rec.Score; score != nil {
		stages := score.StageSummary
		sleep.TotalInBedMilli = ptr(stages.TotalInBedTimeMilli)
		sleep.TotalAwakeMilli = ptr(stages.TotalAwakeTimeMilli)
		sleep.TotalLightSleepMilli = ptr(stages.TotalLightSleepTimeMilli)
		sleep.TotalSlowWaveSleepMilli = ptr(stages.TotalSlowWaveSleepTimeMilli)
		sleep.TotalREMSleepMilli = ptr(stages.TotalREMSleepTimeMilli)
		sleep.SleepCycleCount = ptr(stages.SleepCycleCount)
		sleep.DisturbanceCount = ptr(stages.DisturbanceCount)
		sleep.RespiratoryRate = score.RespiratoryRate
		sleep.SleepPerformancePercentage = score.SleepPerformancePercentage
		sleep.SleepConsistencyPercentage = score.SleepConsistencyPercentage
		sleep.SleepEfficiencyPercentage = score.SleepEfficiencyPercentage
	}

	return sleep, nil
}

func toWhoopWorkout(userID uuid.UUID, rec *service.WhoopWorkoutRecord, syncedAt time.Time) (*entity.WhoopWorkout, error) {
	if rec.ID == "" {
		return nil, errors.New("workout without id")
	}

	start, err := parseWhoopTime("start", rec.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseWhoopTime("end", rec.End)
	if err != nil {
		return nil, err
	}

	workout := &entity.WhoopWorkout{
		UserID:         userID,
		WhoopWorkoutID: string(rec.ID),
		Start:          start,
		End:            end,
		SportID:        rec.SportID,
		ScoreState:     rec.ScoreState,
		RawJSON:        rec.Raw,
		SyncedAt:       syncedAt,
	}

	if score := rec.Score; score != nil {
		workout.Strain = ptr(score.Strain)
		workout.AverageHeartRate = ptr(score.AverageHeartRate)
		workout.MaxHeartRate = ptr(score.MaxHeartRate)
		workout.Kilojoule = ptr(score.Kilojoule)
		workout.CaloriesKcal = measure.KilojoulesToKcal(workout.Kilojoule)
	}

	return workout, nil
}
