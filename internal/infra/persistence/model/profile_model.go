package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
type UserProfileModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	HeightCm    *float64   `gorm:"type:numeric(5,1)"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Gender      *string    `gorm:"type:varchar(10)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// All lists every model managed by the migrate command, in dependency order.
func All() []any {
	return []any{
		&OAuthTokenModel{},
		&SyncLogModel{},
		&SyncCursorModel{},
		&WhoopCycleModel{},
		&WhoopRecoveryModel{},
		&WhoopSleepModel{},
		&WhoopWorkoutModel{},
		&WithingsMeasurementModel{},
		&UserProfileModel{},
	}
}
