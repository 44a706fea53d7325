package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WithingsMeasurementModel is the GORM-specific struct for the 'withings_measurements' table.
type WithingsMeasurementModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_withings_measurements_user_grp"`
	WithingsGrpID int64     `gorm:"column:withings_grpid;not null;uniqueIndex:idx_withings_measurements_user_grp"`
	MeasuredAt    time.Time `gorm:"type:timestamptz;not null;index"`
	Category      int       `gorm:"not null;default:1"`
	WeightKg      *float64
	HeightM       *float64
	FatFreeMassKg *float64
	FatRatioPct   *float64
	FatMassKg     *float64
	MuscleMassKg  *float64
	HydrationKg   *float64
	BoneMassKg    *float64
	BMI           *float64 `gorm:"column:bmi"`
	VO2Max        *float64 `gorm:"column:vo2max"`
	VisceralFat   *int
	BMRKcal       *int           `gorm:"column:bmr_kcal"`
	RawJSON       datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt      time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WithingsMeasurementModel) TableName() string {
	return "withings_measurements"
}
