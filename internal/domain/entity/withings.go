package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WithingsMeasurement is one measurement group from the scale, decoded into named fields.
type WithingsMeasurement struct {
	UserID        uuid.UUID       `json:"user_id"`
	WithingsGrpID int64           `json:"withings_grpid"`
	MeasuredAt    time.Time       `json:"measured_at"`
	Category      int             `json:"category"`
	WeightKg      *float64        `json:"weight_kg,omitempty"`
	HeightM       *float64        `json:"height_m,omitempty"`
	FatFreeMassKg *float64        `json:"fat_free_mass_kg,omitempty"`
	FatRatioPct   *float64        `json:"fat_ratio_pct,omitempty"`
	FatMassKg     *float64        `json:"fat_mass_kg,omitempty"`
	MuscleMassKg  *float64        `json:"muscle_mass_kg,omitempty"`
	HydrationKg   *float64        `json:"hydration_kg,omitempty"`
	BoneMassKg    *float64        `json:"bone_mass_kg,omitempty"`
	VO2Max        *float64        `json:"vo2max,omitempty"`
	VisceralFat   *int            `json:"visceral_fat,omitempty"`
	BMI           *float64        `json:"bmi,omitempty"`
	BMRKcal       *int            `json:"bmr_kcal,omitempty"`
	RawJSON       json.RawMessage `json:"raw_json,omitempty"`
	SyncedAt      time.Time       `json:"synced_at"`
}
