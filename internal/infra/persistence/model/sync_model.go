package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLogModel is the GORM-specific struct for the 'sync_log' table.
type SyncLogModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_sync_log_user_provider_started,priority:1"`
	Provider      string     `gorm:"type:varchar(20);not null;index:idx_sync_log_user_provider_started,priority:2"`
	Status        string     `gorm:"type:varchar(20);not null"`
	RecordsSynced int        `gorm:"not null;default:0"`
	ErrorMessage  *string    `gorm:"type:text"`
	StartedAt     time.Time  `gorm:"type:timestamptz;not null;index:idx_sync_log_user_provider_started,priority:3"`
	CompletedAt   *time.Time `gorm:"type:timestamptz"`
}

// TableName explicitly sets the table name for GORM.
func (SyncLogModel) TableName() string {
	return "sync_log"
}

// SyncCursorModel is the GORM-specific struct for the 'sync_cursors' table.
type SyncCursorModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Provider     string    `gorm:"type:varchar(20);primaryKey"`
	LastSyncedAt time.Time `gorm:"type:timestamptz;not null"`
	SyncLogID    uuid.UUID `gorm:"type:uuid;not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SyncCursorModel) TableName() string {
	return "sync_cursors"
}
