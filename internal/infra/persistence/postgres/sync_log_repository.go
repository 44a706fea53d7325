package postgres

import (
	"context"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// syncLogRepository implements repository.SyncLogRepository.
type syncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository is the constructor for syncLogRepository.
func NewSyncLogRepository(db *gorm.DB) repository.SyncLogRepository {
	return &syncLogRepository{db: db}
}

func (repo *syncLogRepository) Create(ctx context.Context, entry *entity.SyncLogEntry) error {
	entry.Status = entity.SyncStatusStarted
	logM := fromSyncLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sync log entry")
	}

	entry.ID = logM.ID

	return nil
}

func (repo *syncLogRepository) MarkCompleted(ctx context.Context, id uuid.UUID, records int, completedAt time.Time) error {
	return repo.finalize(ctx, id, map[string]any{
		"status":         string(entity.SyncStatusCompleted),
		"records_synced": records,
		"completed_at":   completedAt,
	})
}

func (repo *syncLogRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string, completedAt time.Time) error {
	return repo.finalize(ctx, id, map[string]any{
		"status":        string(entity.SyncStatusFailed),
		"error_message": message,
		"completed_at":  completedAt,
	})
}

// finalize only touches rows still in the started state, so an entry transitions exactly once.
func (repo *syncLogRepository) finalize(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SyncLogModel{}).
		Where("id = ? AND status = ?", id, string(entity.SyncStatusStarted)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to finalize sync log entry")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SyncLogModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up sync log entry")
	}
	if count == 0 {
		return repository.ErrSyncLogNotFound
	}

	return repository.ErrSyncLogFinalized
}

func (repo *syncLogRepository) LatestCompleted(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncLogEntry, error) {
	var logM model.SyncLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND status = ?", userID, provider.String(), string(entity.SyncStatusCompleted)).
		Order("completed_at DESC").
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSyncLogNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest completed sync")
	}

	return toSyncLogDomain(&logM), nil
}

func (repo *syncLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SyncLogEntry, error) {
	var logModels []*model.SyncLogModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sync log")
	}

	entries := make([]*entity.SyncLogEntry, 0, len(logModels))
	for _, logM := range logModels {
		entries = append(entries, toSyncLogDomain(logM))
	}

	return entries, nil
}

// syncCursorRepository implements repository.SyncCursorRepository.
type syncCursorRepository struct {
	db *gorm.DB
}

// NewSyncCursorRepository is the constructor for syncCursorRepository.
func NewSyncCursorRepository(db *gorm.DB) repository.SyncCursorRepository {
	return &syncCursorRepository{db: db}
}

func (repo *syncCursorRepository) Find(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncCursor, error) {
	var cursorM model.SyncCursorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&cursorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCursorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find sync cursor")
	}

	return &entity.SyncCursor{
		UserID:       cursorM.UserID,
		Provider:     provider,
		LastSyncedAt: cursorM.LastSyncedAt,
		SyncLogID:    cursorM.SyncLogID,
		UpdatedAt:    cursorM.UpdatedAt,
	}, nil
}

func (repo *syncCursorRepository) Upsert(ctx context.Context, cursor *entity.SyncCursor) error {
	cursorM := &model.SyncCursorModel{
		UserID:       cursor.UserID,
		Provider:     cursor.Provider.String(),
		LastSyncedAt: cursor.LastSyncedAt,
		SyncLogID:    cursor.SyncLogID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_synced_at", "sync_log_id", "updated_at"}),
		}).
		Create(cursorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert sync cursor")
	}

	cursor.UpdatedAt = cursorM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSyncLogDomain(data *model.SyncLogModel) *entity.SyncLogEntry {
	return &entity.SyncLogEntry{
		ID:            data.ID,
		UserID:        data.UserID,
		Provider:      entity.Provider(data.Provider),
		Status:        entity.SyncStatus(data.Status),
		RecordsSynced: data.RecordsSynced,
		ErrorMessage:  data.ErrorMessage,
		StartedAt:     data.StartedAt,
		CompletedAt:   data.CompletedAt,
	}
}

func fromSyncLogDomain(entry *entity.SyncLogEntry) *model.SyncLogModel {
	return &model.SyncLogModel{
		ID:            entry.ID,
		UserID:        entry.UserID,
		Provider:      entry.Provider.String(),
		Status:        string(entry.Status),
		RecordsSynced: entry.RecordsSynced,
		ErrorMessage:  entry.ErrorMessage,
		StartedAt:     entry.StartedAt,
		CompletedAt:   entry.CompletedAt,
	}
}
