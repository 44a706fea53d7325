package impl

import (
	"testing"
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWhoopCycle(t *testing.T) {
	userID := uuid.New()
	end := "2025-03-10T06:00:00Z"
	tz := "-05:00"

	cycle, err := toWhoopCycle(userID, &service.WhoopCycleRecord{
		ID:             "93845",
		Start:          "2025-03-09T06:25:14.123Z",
		End:            &end,
		TimezoneOffset: &tz,
		ScoreState:     "SCORED",
		Score:          &service.CycleScore{Strain: 5.29, Kilojoule: 1000, AverageHeartRate: 68, MaxHeartRate: 141},
		Raw:            []byte(`{"id":93845}`),
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "93845", cycle.WhoopCycleID)
	assert.Equal(t, time.Date(2025, 3, 9, 6, 25, 14, 123000000, time.UTC), cycle.Start)
	require.NotNil(t, cycle.End)
	assert.Equal(t, "-05:00", cycle.TimezoneOffset)
	require.NotNil(t, cycle.CaloriesKcal)
	assert.Equal(t, 239, *cycle.CaloriesKcal)
	assert.JSONEq(t, `{"id":93845}`, string(cycle.RawJSON))
}

func TestToWhoopCycle_UnscoredKeepsIdentity(t *testing.T) {
	cycle, err := toWhoopCycle(uuid.New(), &service.WhoopCycleRecord{
		ID:         "1",
		Start:      "2025-03-09T06:25:14Z",
		ScoreState: "PENDING_SCORE",
	}, testNow)

	require.NoError(t, err)
	assert.Nil(t, cycle.End)
	assert.Nil(t, cycle.Strain)
	assert.Nil(t, cycle.CaloriesKcal)
	assert.Equal(t, "PENDING_SCORE", cycle.ScoreState)
}

func TestToWhoopCycle_InvalidStart(t *testing.T) {
	_, err := toWhoopCycle(uuid.New(), &service.WhoopCycleRecord{ID: "1", Start: "yesterday"}, testNow)

	assert.Error(t, err)
}

func TestToWhoopRecovery_DefaultsWithoutScore(t *testing.T) {
	recovery, err := toWhoopRecovery(uuid.New(), &service.WhoopRecoveryRecord{
		CycleID:    "93845",
		ScoreState: "UNSCORABLE",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, testNow, recovery.RecordedAt)
	require.NotNil(t, recovery.UserCalibrating)
	assert.False(t, *recovery.UserCalibrating)
	assert.Nil(t, recovery.RecoveryScore)
}

func TestToWhoopSleep_FlattensStages(t *testing.T) {
	score := &service.SleepScore{}
	score.StageSummary.TotalInBedTimeMilli = 30272735
	score.StageSummary.SleepCycleCount = 3
	perf := 98.0
	score.SleepPerformancePercentage = &perf

	sleep, err := toWhoopSleep(uuid.New(), &service.WhoopSleepRecord{
		ID:         "ecfc6a15",
		Start:      "2025-03-08T23:10:00Z",
		End:        "2025-03-09T06:25:14Z",
		Nap:        true,
		ScoreState: "SCORED",
		Score:      score,
	}, testNow)

	require.NoError(t, err)
	assert.True(t, sleep.IsNap)
	assert.Equal(t, int64(30272735), *sleep.TotalInBedMilli)
	assert.Equal(t, 3, *sleep.SleepCycleCount)
	assert.InDelta(t, 98.0, *sleep.SleepPerformancePercentage, 1e-9)
}

func TestToWhoopWorkout(t *testing.T) {
	sport := 1
	workout, err := toWhoopWorkout(uuid.New(), &service.WhoopWorkoutRecord{
		ID:      "1043",
		Start:   "2025-03-09T17:00:00Z",
		End:     "2025-03-09T18:00:00Z",
		SportID: &sport,
		Score:   &service.WorkoutScore{Strain: 8.1, Kilojoule: 1000, AverageHeartRate: 120, MaxHeartRate: 170},
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, *workout.SportID)
	assert.Equal(t, 239, *workout.CaloriesKcal)
}

func TestToWithingsMeasurement(t *testing.T) {
	group := &service.WithingsMeasureGroup{
		GrpID:    101,
		Date:     1741564800,
		Category: 1,
		Measures: []service.WithingsMeasure{
			{Value: 72500, Type: withingsWeight, Unit: -3},
			{Value: 178, Type: withingsHeight, Unit: -2},
			{Value: 2150, Type: withingsFatRatio, Unit: -2},
			{Value: 92, Type: withingsVisceralFat, Unit: -1},
			{Value: 42, Type: 999, Unit: 0},
		},
	}

	m := toWithingsMeasurement(uuid.New(), group, testNow)

	assert.Equal(t, int64(101), m.WithingsGrpID)
	assert.Equal(t, time.Unix(1741564800, 0).UTC(), m.MeasuredAt)
	assert.InDelta(t, 72.5, *m.WeightKg, 1e-9)
	assert.InDelta(t, 1.78, *m.HeightM, 1e-9)
	assert.InDelta(t, 21.5, *m.FatRatioPct, 1e-9)
	assert.Equal(t, 9, *m.VisceralFat)
	assert.Nil(t, m.MuscleMassKg)
}

func TestDeriveMetrics_HeightResolution(t *testing.T) {
	profileHeight := 1.80
	weight := 70.0
	carried := 1.75
	own := 1.70

	tests := []struct {
		name        string
		own         *float64
		carried     *float64
		profile     *float64
		wantBMI     *float64
		wantCarried *float64
	}{
		{name: "own height wins", own: &own, carried: &carried, profile: &profileHeight, wantBMI: ptr(24.2), wantCarried: &own},
		{name: "carried height", carried: &carried, profile: &profileHeight, wantBMI: ptr(22.9), wantCarried: &carried},
		{name: "profile height", profile: &profileHeight, wantBMI: ptr(21.6)},
		{name: "no height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &entity.WithingsMeasurement{WeightKg: &weight, HeightM: tt.own, MeasuredAt: testNow}

			next := deriveMetrics(m, tt.carried, bodyProfile{heightM: tt.profile})

			if tt.wantBMI == nil {
				assert.Nil(t, m.BMI)
			} else {
				require.NotNil(t, m.BMI)
				assert.InDelta(t, *tt.wantBMI, *m.BMI, 1e-9)
			}
			assert.Equal(t, tt.wantCarried, next)
		})
	}
}

func TestDeriveMetrics_BMR(t *testing.T) {
	heightCm := 175.0
	dob := time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)
	male := entity.GenderMale
	female := entity.GenderFemale
	weight := 70.0

	maleProfile := newBodyProfile(&entity.UserProfile{HeightCm: &heightCm, DateOfBirth: &dob, Gender: &male})
	femaleProfile := newBodyProfile(&entity.UserProfile{HeightCm: &heightCm, DateOfBirth: &dob, Gender: &female})

	m := &entity.WithingsMeasurement{WeightKg: &weight, MeasuredAt: testNow}
	deriveMetrics(m, nil, maleProfile)
	require.NotNil(t, m.BMRKcal)
	assert.Equal(t, 1649, *m.BMRKcal)

	m = &entity.WithingsMeasurement{WeightKg: &weight, MeasuredAt: testNow}
	deriveMetrics(m, nil, femaleProfile)
	require.NotNil(t, m.BMRKcal)
	assert.Equal(t, 1483, *m.BMRKcal)

	m = &entity.WithingsMeasurement{WeightKg: &weight, MeasuredAt: testNow}
	deriveMetrics(m, nil, newBodyProfile(&entity.UserProfile{HeightCm: &heightCm}))
	assert.Nil(t, m.BMRKcal)
}
