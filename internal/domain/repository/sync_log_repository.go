package repository

import (
	"context"
	"time"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrSyncLogNotFound = errors.New("sync log entry not found")
	// ErrSyncLogFinalized is returned when a terminal entry would be transitioned again.
	ErrSyncLogFinalized = errors.New("sync log entry already finalized")
	ErrCursorNotFound   = errors.New("sync cursor not found")
)

// SyncLogRepository stores the audit trail of sync attempts.
type SyncLogRepository interface {
	// Create inserts a new entry in the started state.
	Create(ctx context.Context, entry *entity.SyncLogEntry) error

	// MarkCompleted moves a started entry to completed.
	MarkCompleted(ctx context.Context, id uuid.UUID, records int, completedAt time.Time) error

	// MarkFailed moves a started entry to failed with a message.
	MarkFailed(ctx context.Context, id uuid.UUID, message string, completedAt time.Time) error

	// LatestCompleted returns the most recent completed entry or ErrSyncLogNotFound.
	LatestCompleted(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncLogEntry, error)

	// ListByUser returns the newest entries first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SyncLogEntry, error)
}

// SyncCursorRepository stores the explicit incremental-sync checkpoint.
type SyncCursorRepository interface {
	Find(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncCursor, error)
	Upsert(ctx context.Context, cursor *entity.SyncCursor) error
}
