package usecase

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncUsecase runs provider syncs. Sync failures are reported in SyncResult values, not errors.
type SyncUsecase interface {
	// Sync pulls one provider for one user. initial forces the full lookback window.
	Sync(ctx context.Context, userID uuid.UUID, provider entity.Provider, initial bool) entity.SyncResult

	// SyncUser syncs every provider the user has connected, concurrently.
	SyncUser(ctx context.Context, userID uuid.UUID, initial bool) (map[entity.Provider]entity.SyncResult, error)

	// SyncAll syncs every connected (user, provider) pair in-process.
	SyncAll(ctx context.Context) (*entity.BatchResult, error)

	// DispatchAll publishes one sync request per connected (user, provider) pair.
	DispatchAll(ctx context.Context) (int, error)

	// ListLogs returns the user's most recent sync attempts.
	ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SyncLogEntry, error)
}
