package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the lifecycle state of a sync log entry.
type SyncStatus string

const (
	SyncStatusStarted   SyncStatus = "started"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// IsTerminal reports whether the status can no longer change.
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusFailed
}

// SyncLogEntry records one sync attempt for a (user, provider).
type SyncLogEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Provider      Provider   `json:"provider"`
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// SyncCursor is the explicit checkpoint for incremental syncs.
// It always advances in the same transaction that completes a sync log entry.
type SyncCursor struct {
	UserID       uuid.UUID
	Provider     Provider
	LastSyncedAt time.Time
	SyncLogID    uuid.UUID
	UpdatedAt    time.Time
}

// SyncWindow is the half-open time range requested from a provider.
type SyncWindow struct {
	Start time.Time
	End   time.Time
}

// SyncResult is the outcome of one sync attempt. Failures are reported here, not as errors.
type SyncResult struct {
	Success bool   `json:"success"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// NoValidTokenMessage is reported when no usable credential could be obtained.
const NoValidTokenMessage = "No valid token"

// FailedSync builds an unsuccessful SyncResult.
func FailedSync(msg string) SyncResult {
	return SyncResult{Success: false, Records: 0, Error: msg}
}

// BatchResult aggregates a cross-provider batch run.
type BatchResult struct {
	Synced  int                                   `json:"synced"`
	Results map[uuid.UUID]map[Provider]SyncResult `json:"results"`
}
