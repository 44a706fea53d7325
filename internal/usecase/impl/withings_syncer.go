package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type withingsBatch struct {
	window entity.SyncWindow
	groups []*service.WithingsMeasureGroup
}

type withingsSyncer struct {
	api      service.WithingsAPI
	repo     repository.WithingsRepository
	profiles repository.ProfileRepository
	now      func() time.Time
	logger   *slog.Logger
}

func newWithingsSyncer(
	api service.WithingsAPI,
	repo repository.WithingsRepository,
	profiles repository.ProfileRepository,
	now func() time.Time,
	logger *slog.Logger,
) providerSyncer {
	s := &withingsSyncer{api: api, repo: repo, profiles: profiles, now: now, logger: logger}

	return &syncStrategy[*withingsBatch]{
		provider: entity.ProviderWithings,
		fetch:    s.fetch,
		upsert:   s.upsert,
	}
}

func (s *withingsSyncer) fetch(ctx context.Context, accessToken string, window entity.SyncWindow) (*withingsBatch, error) {
	groups, err := s.api.FetchMeasureGroups(ctx, accessToken, window)
	if err != nil {
		return nil, err
	}

	return &withingsBatch{window: window, groups: groups}, nil
}

func (s *withingsSyncer) upsert(ctx context.Context, userID uuid.UUID, batch *withingsBatch) int {
	if len(batch.groups) == 0 {
		return 0
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	syncedAt := s.now()

	rows := make([]*entity.WithingsMeasurement, 0, len(batch.groups))
	for _, group := range batch.groups {
		rows = append(rows, toWithingsMeasurement(userID, group, syncedAt))
	}
	slices.SortStableFunc(rows, func(a, b *entity.WithingsMeasurement) int {
		return a.MeasuredAt.Compare(b.MeasuredAt)
	})

	profile := newBodyProfile(s.loadProfile(ctx, logger, userID))

	carried, err := s.repo.LatestHeightAtOrBefore(ctx, userID, batch.window.Start)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load stored height", slog.Any("error", err))
	}

	for _, row := range rows {
		carried = deriveMetrics(row, carried, profile)
	}

	return upsertRecords(ctx, logger, "measurements", rows,
		func(row *entity.WithingsMeasurement) (*entity.WithingsMeasurement, error) { return row, nil },
		s.repo.UpsertMeasurements)
}

// loadProfile returns nil when the user has not saved a profile yet.
func (s *withingsSyncer) loadProfile(ctx context.Context, logger *slog.Logger, userID uuid.UUID) *entity.UserProfile {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			logger.WarnContext(ctx, "Failed to load profile for derived metrics", slog.Any("error", err))
		}

		return nil
	}

	return profile
}
