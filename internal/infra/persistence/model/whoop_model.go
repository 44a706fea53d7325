package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WhoopCycleModel is the GORM-specific struct for the 'whoop_cycles' table.
type WhoopCycleModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_whoop_cycles_user_cycle"`
	WhoopCycleID     string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_whoop_cycles_user_cycle"`
	Start            time.Time  `gorm:"column:start_time;type:timestamptz;not null;index"`
	End              *time.Time `gorm:"column:end_time;type:timestamptz"`
	TimezoneOffset   string     `gorm:"type:varchar(10)"`
	ScoreState       string     `gorm:"type:varchar(20);not null"`
	Strain           *float64
	Kilojoule        *float64
	AverageHeartRate *int
	MaxHeartRate     *int
	CaloriesKcal     *int
	RawJSON          datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt         time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WhoopCycleModel) TableName() string {
	return "whoop_cycles"
}

// WhoopRecoveryModel is the GORM-specific struct for the 'whoop_recovery' table.
type WhoopRecoveryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_whoop_recovery_user_cycle"`
	WhoopCycleID     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_whoop_recovery_user_cycle"`
	WhoopSleepID     string    `gorm:"type:varchar(64)"`
	ScoreState       string    `gorm:"type:varchar(20);not null"`
	RecoveryScore    *float64
	RestingHeartRate *float64
	HRVRmssdMilli    *float64 `gorm:"column:hrv_rmssd_milli"`
	SpO2Percentage   *float64 `gorm:"column:spo2_percentage"`
	SkinTempCelsius  *float64
	UserCalibrating  *bool
	RecordedAt       time.Time      `gorm:"column:created_at;type:timestamptz;not null;index"`
	RawJSON          datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt         time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WhoopRecoveryModel) TableName() string {
	return "whoop_recovery"
}

// WhoopSleepModel is the GORM-specific struct for the 'whoop_sleep' table.
type WhoopSleepModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_whoop_sleep_user_sleep"`
	WhoopSleepID               string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_whoop_sleep_user_sleep"`
	Start                      time.Time `gorm:"column:start_time;type:timestamptz;not null;index"`
	End                        time.Time `gorm:"column:end_time;type:timestamptz;not null"`
	IsNap                      bool      `gorm:"not null;default:false"`
	ScoreState                 string    `gorm:"type:varchar(20);not null"`
	TotalInBedMilli            *int64
	TotalAwakeMilli            *int64
	TotalLightSleepMilli       *int64
	TotalSlowWaveSleepMilli    *int64
	TotalREMSleepMilli         *int64 `gorm:"column:total_rem_sleep_milli"`
	SleepCycleCount            *int
	DisturbanceCount           *int
	RespiratoryRate            *float64
	SleepPerformancePercentage *float64
	SleepConsistencyPercentage *float64
	SleepEfficiencyPercentage  *float64
	RawJSON                    datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt                   time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WhoopSleepModel) TableName() string {
	return "whoop_sleep"
}

// WhoopWorkoutModel is the GORM-specific struct for the 'whoop_workouts' table.
type WhoopWorkoutModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_whoop_workouts_user_workout"`
	WhoopWorkoutID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_whoop_workouts_user_workout"`
	Start            time.Time `gorm:"column:start_time;type:timestamptz;not null;index"`
	End              time.Time `gorm:"column:end_time;type:timestamptz;not null"`
	SportID          *int
	ScoreState       string `gorm:"type:varchar(20);not null"`
	Strain           *float64
	AverageHeartRate *int
	MaxHeartRate     *int
	Kilojoule        *float64
	CaloriesKcal     *int
	RawJSON          datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt         time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WhoopWorkoutModel) TableName() string {
	return "whoop_workouts"
}
