package service

import (
	"bytes"
	"context"
	"encoding/json"

	"cortex/internal/domain/entity"

	"github.com/pkg/errors"
)

// ProviderID is an upstream identifier that may arrive as a JSON number or string.
type ProviderID string

// UnmarshalJSON accepts 123, "123" and null.
func (id *ProviderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*id = ProviderID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "provider id is neither string nor number")
	}
	*id = ProviderID(n.String())

	return nil
}

// WhoopCycleRecord is a WHOOP physiological cycle as returned by the API.
type WhoopCycleRecord struct {
	ID             ProviderID  `json:"id"`
	Start          string      `json:"start"`
	End            *string     `json:"end"`
	TimezoneOffset *string     `json:"timezone_offset"`
	ScoreState     string      `json:"score_state"`
	Score          *CycleScore `json:"score"`

	Raw json.RawMessage `json:"-"`
}

type CycleScore struct {
	Strain           float64 `json:"strain"`
	Kilojoule        float64 `json:"kilojoule"`
	AverageHeartRate int     `json:"average_heart_rate"`
	MaxHeartRate     int     `json:"max_heart_rate"`
}

// WhoopRecoveryRecord is a WHOOP recovery as returned by the API.
type WhoopRecoveryRecord struct {
	CycleID    ProviderID     `json:"cycle_id"`
	SleepID    ProviderID     `json:"sleep_id"`
	CreatedAt  string         `json:"created_at"`
	ScoreState string         `json:"score_state"`
	Score      *RecoveryScore `json:"score"`

	Raw json.RawMessage `json:"-"`
}

type RecoveryScore struct {
	UserCalibrating  bool     `json:"user_calibrating"`
	RecoveryScore    float64  `json:"recovery_score"`
	RestingHeartRate float64  `json:"resting_heart_rate"`
	HRVRmssdMilli    float64  `json:"hrv_rmssd_milli"`
	SpO2Percentage   *float64 `json:"spo2_percentage"`
	SkinTempCelsius  *float64 `json:"skin_temp_celsius"`
}

// WhoopSleepRecord is a WHOOP sleep as returned by the API.
type WhoopSleepRecord struct {
	ID         ProviderID  `json:"id"`
	Start      string      `json:"start"`
	End        string      `json:"end"`
	Nap        bool        `json:"nap"`
	ScoreState string      `json:"score_state"`
	Score      *SleepScore `json:"score"`

	Raw json.RawMessage `json:"-"`
}

type SleepScore struct {
	StageSummary struct {
		TotalInBedTimeMilli         int64 `json:"total_in_bed_time_milli"`
		TotalAwakeTimeMilli         int64 `json:"total_awake_time_milli"`
		TotalLightSleepTimeMilli    int64 `json:"total_light_sleep_time_milli"`
		TotalSlowWaveSleepTimeMilli int64 `json:"total_slow_wave_sleep_time_milli"`
		TotalREMSleepTimeMilli      int64 `json:"total_rem_sleep_time_milli"`
		SleepCycleCount             int   `json:"sleep_cycle_count"`
		DisturbanceCount            int   `json:"disturbance_count"`
	} `json:"stage_summary"`
	RespiratoryRate            *float64 `json:"respiratory_rate"`
	SleepPerformancePercentage *float64 `json:"sleep_performance_percentage"`
	SleepConsistencyPercentage *float64 `json:"sleep_consistency_percentage"`
	SleepEfficiencyPercentage  *float64 `json:"sleep_efficiency_percentage"`
}

// WhoopWorkoutRecord is a WHOOP workout as returned by the API.
type WhoopWorkoutRecord struct {
	ID         ProviderID    `json:"id"`
	Start      string        `json:"start"`
	End        string        `json:"end"`
	SportID    *int          `json:"sport_id"`
	ScoreState string        `json:"score_state"`
	Score      *WorkoutScore `json:"score"`

	Raw json.RawMessage `json:"-"`
}

type WorkoutScore struct {
	Strain           float64 `json:"strain"`
	AverageHeartRate int     `json:"average_heart_rate"`
	MaxHeartRate     int     `json:"max_heart_rate"`
	Kilojoule        float64 `json:"kilojoule"`
}

// WhoopAPI fetches every page of each WHOOP record type in a window.
type WhoopAPI interface {
	FetchCycles(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*WhoopCycleRecord, error)
	FetchRecoveries(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*WhoopRecoveryRecord, error)
	FetchSleeps(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*WhoopSleepRecord, error)
	FetchWorkouts(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*WhoopWorkoutRecord, error)
}

// WithingsMeasure is one scaled value inside a measurement group.
type WithingsMeasure struct {
	Value int64 `json:"value"`
	Type  int   `json:"type"`
	Unit  int   `json:"unit"`
}

// WithingsMeasureGroup is one weigh-in as returned by getmeas.
type WithingsMeasureGroup struct {
	GrpID    int64             `json:"grpid"`
	Date     int64             `json:"date"`
	Category int               `json:"category"`
	Measures []WithingsMeasure `json:"measures"`

	Raw json.RawMessage `json:"-"`
}

// WithingsAPI fetches every page of measurement groups in a window.
type WithingsAPI interface {
	FetchMeasureGroups(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*WithingsMeasureGroup, error)
}
