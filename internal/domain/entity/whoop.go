package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WhoopCycle is a physiological day as stored locally.
type WhoopCycle struct {
	UserID           uuid.UUID       `json:"user_id"`
	WhoopCycleID     string          `json:"whoop_cycle_id"`
	Start            time.Time       `json:"start"`
	End              *time.Time      `json:"end,omitempty"`
	TimezoneOffset   string          `json:"timezone_offset,omitempty"`
	ScoreState       string          `json:"score_state"`
	Strain           *float64        `json:"strain,omitempty"`
	Kilojoule        *float64        `json:"kilojoule,omitempty"`
	AverageHeartRate *int            `json:"average_heart_rate,omitempty"`
	MaxHeartRate     *int            `json:"max_heart_rate,omitempty"`
	CaloriesKcal     *int            `json:"calories_kcal,omitempty"`
	RawJSON          json.RawMessage `json:"raw_json,omitempty"`
	SyncedAt         time.Time       `json:"synced_at"`
}

// WhoopRecovery is the recovery score attached to a cycle.
type WhoopRecovery struct {
	UserID           uuid.UUID       `json:"user_id"`
	WhoopCycleID     string          `json:"whoop_cycle_id"`
	WhoopSleepID     string          `json:"whoop_sleep_id,omitempty"`
	ScoreState       string          `json:"score_state"`
	RecoveryScore    *float64        `json:"recovery_score,omitempty"`
	RestingHeartRate *float64        `json:"resting_heart_rate,omitempty"`
	HRVRmssdMilli    *float64        `json:"hrv_rmssd_milli,omitempty"`
	SpO2Percentage   *float64        `json:"spo2_percentage,omitempty"`
	SkinTempCelsius  *float64        `json:"skin_temp_celsius,omitempty"`
	UserCalibrating  *bool           `json:"user_calibrating,omitempty"`
	RecordedAt       time.Time       `json:"recorded_at"`
	RawJSON          json.RawMessage `json:"raw_json,omitempty"`
	SyncedAt         time.Time       `json:"synced_at"`
}

// WhoopSleep is one sleep or nap with its stage summary flattened.
type WhoopSleep struct {
	UserID                     uuid.UUID       `json:"user_id"`
	WhoopSleepID               string          `json:"whoop_sleep_id"`
	Start                      time.Time       `json:"start"`
	End                        time.Time       `json:"end"`
	IsNap                      bool            `json:"is_nap"`
	ScoreState                 string          `json:"score_state"`
	TotalInBedMilli            *int64          `json:"total_in_bed_milli,omitempty"`
	TotalAwakeMilli            *int64          `json:"total_awake_milli,omitempty"`
	TotalLightSleepMilli       *int64          `json:"total_light_sleep_milli,omitempty"`
	TotalSlowWaveSleepMilli    *int64          `json:"total_slow_wave_sleep_milli,omitempty"`
	TotalREMSleepMilli         *int64          `json:"total_rem_sleep_milli,omitempty"`
	SleepCycleCount            *int            `json:"sleep_cycle_count,omitempty"`
	DisturbanceCount           *int            `json:"disturbance_count,omitempty"`
	RespiratoryRate            *float64        `json:"respiratory_rate,omitempty"`
	SleepPerformancePercentage *float64        `json:"sleep_performance_percentage,omitempty"`
	SleepConsistencyPercentage *float64        `json:"sleep_consistency_percentage,omitempty"`
	SleepEfficiencyPercentage  *float64        `json:"sleep_efficiency_percentage,omitempty"`
	RawJSON                    json.RawMessage `json:"raw_json,omitempty"`
	SyncedAt                   time.Time       `json:"synced_at"`
}

// WhoopWorkout is one recorded activity.
type WhoopWorkout struct {
	UserID           uuid.UUID       `json:"user_id"`
	WhoopWorkoutID   string          `json:"whoop_workout_id"`
	Start            time.Time       `json:"start"`
	End              time.Time       `json:"end"`
	SportID          *int            `json:"sport_id,omitempty"`
	ScoreState       string          `json:"score_state"`
	Strain           *float64        `json:"strain,omitempty"`
	AverageHeartRate *int            `json:"average_heart_rate,omitempty"`
	MaxHeartRate     *int            `json:"max_heart_rate,omitempty"`
	Kilojoule        *float64        `json:"kilojoule,omitempty"`
	CaloriesKcal     *int            `json:"calories_kcal,omitempty"`
	RawJSON          json.RawMessage `json:"raw_json,omitempty"`
	SyncedAt         time.Time       `json:"synced_at"`
}

// WhoopData bundles every WHOOP record type for one query window.
type WhoopData struct {
	Cycles     []*WhoopCycle    `json:"cycles"`
	Recoveries []*WhoopRecovery `json:"recovery"`
	Sleeps     []*WhoopSleep    `json:"sleep"`
	Workouts   []*WhoopWorkout  `json:"workouts"`
}
