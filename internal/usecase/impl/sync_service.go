package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cortex/config"
	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"
	"cortex/internal/infra/metrics"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultLogLimit = 50

// providerSyncer pulls one provider's records for a window and stores them.
// It returns the number of rows written.
type providerSyncer interface {
	Provider() entity.Provider
	Run(ctx context.Context, userID uuid.UUID, accessToken string, window entity.SyncWindow) (int, error)
}

// syncStrategy adapts a typed fetch and upsert pair into a providerSyncer.
type syncStrategy[T any] struct {
	provider entity.Provider
	fetch    func(ctx context.Context, accessToken string, window entity.SyncWindow) (T, error)
	upsert   func(ctx context.Context, userID uuid.UUID, fetched T) int
}

func (s *syncStrategy[T]) Provider() entity.Provider {
	return s.provider
}

func (s *syncStrategy[T]) Run(ctx context.Context, userID uuid.UUID, accessToken string, window entity.SyncWindow) (int, error) {
	fetched, err := s.fetch(ctx, accessToken, window)
	if err != nil {
		return 0, err
	}

	return s.upsert(ctx, userID, fetched), nil
}

// syncService implements the SyncUsecase interface.
type syncService struct {
	tokens    usecase.TokenUsecase
	txManager repository.TransactionManager
	tokenRepo repository.TokenRepository
	syncLogs  repository.SyncLogRepository
	cursors   repository.SyncCursorRepository
	publisher service.EventPublisher
	syncers   map[entity.Provider]providerSyncer
	lookback  time.Duration
	timeout   time.Duration
	maxUsers  int
	now       func() time.Time
	logger    *slog.Logger
}

// SyncServiceParams holds dependencies for the sync service, injected by Fx
type SyncServiceParams struct {
	fx.In

	Config       *config.Config
	Tokens       usecase.TokenUsecase
	TxManager    repository.TransactionManager
	TokenRepo    repository.TokenRepository
	SyncLogRepo  repository.SyncLogRepository
	CursorRepo   repository.SyncCursorRepository
	WhoopAPI     service.WhoopAPI
	WhoopRepo    repository.WhoopRepository
	WithingsAPI  service.WithingsAPI
	WithingsRepo repository.WithingsRepository
	ProfileRepo  repository.ProfileRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	syncers := []providerSyncer{
		newWhoopSyncer(params.WhoopAPI, params.WhoopRepo, time.Now, params.Logger),
		newWithingsSyncer(params.WithingsAPI, params.WithingsRepo, params.ProfileRepo, time.Now, params.Logger),
	}

	return newSyncService(syncDeps{
		tokens:    params.Tokens,
		txManager: params.TxManager,
		tokenRepo: params.TokenRepo,
		syncLogs:  params.SyncLogRepo,
		cursors:   params.CursorRepo,
		publisher: params.Publisher,
		syncers:   syncers,
		cfg:       params.Config.Sync,
		now:       time.Now,
		logger:    params.Logger,
	})
}

type syncDeps struct {
	tokens    usecase.TokenUsecase
	txManager repository.TransactionManager
	tokenRepo repository.TokenRepository
	syncLogs  repository.SyncLogRepository
	cursors   repository.SyncCursorRepository
	publisher service.EventPublisher
	syncers   []providerSyncer
	cfg       *config.SyncConfig
	now       func() time.Time
	logger    *slog.Logger
}

func newSyncService(deps syncDeps) *syncService {
	byProvider := make(map[entity.Provider]providerSyncer, len(deps.syncers))
	for _, s := range deps.syncers {
		byProvider[s.Provider()] = s
	}

	return &syncService{
		tokens:    deps.tokens,
		txManager: deps.txManager,
		tokenRepo: deps.tokenRepo,
		syncLogs:  deps.syncLogs,
		cursors:   deps.cursors,
		publisher: deps.publisher,
		syncers:   byProvider,
		lookback:  time.Duration(deps.cfg.LookbackDays) * 24 * time.Hour,
		timeout:   deps.cfg.AttemptTimeout,
		maxUsers:  deps.cfg.MaxConcurrentUsers,
		now:       deps.now,
		logger:    deps.logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync runs one (user, provider) sync. Failures are reported in the result, never as an error.
func (srv *syncService) Sync(ctx context.Context, userID uuid.UUID, provider entity.Provider, initial bool) entity.SyncResult {
	logger := srv.log(ctx).With(slog.String("userID", userID.String()), slog.String("provider", provider.String()))

	syncer, ok := srv.syncers[provider]
	if !ok {
		return entity.FailedSync("unsupported provider " + provider.String())
	}

	accessToken, ok := srv.tokens.GetValidToken(ctx, userID, provider)
	if !ok {
		logger.WarnContext(ctx, "Skipping sync, no valid token")

		return entity.FailedSync(entity.NoValidTokenMessage)
	}

	startedAt := srv.now()
	entry := &entity.SyncLogEntry{
		UserID:    userID,
		Provider:  provider,
		StartedAt: startedAt,
	}
	if err := srv.syncLogs.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to create sync log entry", slog.Any("error", err))
		metrics.RecordSync(provider.String(), time.Since(startedAt), 0, false)

		return entity.FailedSync(err.Error())
	}

	logger = logger.With(slog.String("syncLogID", entry.ID.String()))
	logger.InfoContext(ctx, "Sync started", slog.Bool("initial", initial))

	records, window, err := srv.attempt(ctx, syncer, userID, accessToken, initial, startedAt)
	if err == nil {
		err = srv.complete(ctx, entry, records)
	}

	if err != nil {
		srv.fail(ctx, logger, entry.ID, err)
		metrics.RecordSync(provider.String(), time.Since(startedAt), 0, false)

		return entity.FailedSync(err.Error())
	}

	logger.InfoContext(ctx, "Sync completed",
		slog.Int("records", records),
		slog.Time("windowStart", window.Start),
		slog.Duration("elapsed", time.Since(startedAt)),
	)
	metrics.RecordSync(provider.String(), time.Since(startedAt), records, true)

	return entity.SyncResult{Success: true, Records: records}
}

func (srv *syncService) attempt(
	ctx context.Context,
	syncer providerSyncer,
	userID uuid.UUID,
	accessToken string,
	initial bool,
	now time.Time,
) (int, entity.SyncWindow, error) {
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	window, err := srv.resolveWindow(ctx, userID, syncer.Provider(), initial, now)
	if err != nil {
		return 0, window, err
	}

	records, err := syncer.Run(ctx, userID, accessToken, window)
	if err != nil {
		return 0, window, err
	}

	return records, window, nil
}

// resolveWindow picks the window start: the lookback for initial syncs, otherwise the cursor,
// then the latest completed log, then the lookback. The end is always now.
func (srv *syncService) resolveWindow(
	ctx context.Context,
	userID uuid.UUID,
	provider entity.Provider,
	initial bool,
	now time.Time,
) (entity.SyncWindow, error) {
	window := entity.SyncWindow{Start: now.Add(-srv.lookback), End: now}
	if initial {
		return window, nil
	}

	cursor, err := srv.cursors.Find(ctx, userID, provider)
	switch {
	case err == nil:
		window.Start = cursor.LastSyncedAt

		return window, nil
	case !errors.Is(err, repository.ErrCursorNotFound):
		return window, errors.Wrap(err, "failed to read sync cursor")
	}

	last, err := srv.syncLogs.LatestCompleted(ctx, userID, provider)
	switch {
	case err == nil && last.CompletedAt != nil:
		window.Start = *last.CompletedAt
	case err != nil && !errors.Is(err, repository.ErrSyncLogNotFound):
		return window, errors.Wrap(err, "failed to read last completed sync")
	}

	return window, nil
}

// complete marks the entry completed and advances the cursor atomically.
// complete marks the entry completed and moves the cursor to that same completed_at.
func (srv *syncService) complete(ctx context.Context, entry *entity.SyncLogEntry, records int) error {
	completedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.SyncLogRepo().MarkCompleted(ctx, entry.ID, records, completedAt); err != nil {
			return err
		}

		return repos.SyncCursorRepo().Upsert(ctx, &entity.SyncCursor{
			UserID:       entry.UserID,
			Provider:     entry.Provider,
			LastSyncedAt: completedAt,
			SyncLogID:    entry.ID,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to complete sync")
	}

	return nil
}

// fail records the failure even when the caller's context is already done.
func (srv *syncService) fail(ctx context.Context, logger *slog.Logger, id uuid.UUID, cause error) {
	logger.ErrorContext(ctx, "Sync failed", slog.Any("error", cause))

	if err := srv.syncLogs.MarkFailed(context.WithoutCancel(ctx), id, cause.Error(), srv.now()); err != nil {
		logger.ErrorContext(ctx, "Failed to mark sync log entry failed", slog.Any("error", err))
	}
}

// SyncUser syncs every provider the user has connected, concurrently.
func (srv *syncService) SyncUser(ctx context.Context, userID uuid.UUID, initial bool) (map[entity.Provider]entity.SyncResult, error) {
	tokens, err := srv.tokenRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	providers := make([]entity.Provider, 0, len(tokens))
	for _, token := range tokens {
		providers = append(providers, token.Provider)
	}

	return srv.syncProviders(ctx, userID, providers, initial), nil
}

func (srv *syncService) syncProviders(ctx context.Context, userID uuid.UUID, providers []entity.Provider, initial bool) map[entity.Provider]entity.SyncResult {
	var (
		mu      sync.Mutex
		results = make(map[entity.Provider]entity.SyncResult, len(providers))
		g       errgroup.Group
	)

	for _, provider := range providers {
		g.Go(func() error {
			result := srv.Sync(ctx, userID, provider, initial)

			mu.Lock()
			results[provider] = result
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return results
}

// SyncAll runs an incremental sync for every connected (user, provider) pair.
// One user's failure never affects another's result.
func (srv *syncService) SyncAll(ctx context.Context) (*entity.BatchResult, error) {
	users, err := srv.connectedByUser(ctx)
	if err != nil {
		return nil, err
	}

	batch := &entity.BatchResult{
		Results: make(map[uuid.UUID]map[entity.Provider]entity.SyncResult, len(users)),
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	if srv.maxUsers > 0 {
		g.SetLimit(srv.maxUsers)
	}

	for _, user := range users {
		g.Go(func() error {
			results := srv.syncProviders(ctx, user.userID, user.providers, false)

			mu.Lock()
			batch.Results[user.userID] = results
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	batch.Synced = len(batch.Results)

	srv.log(ctx).InfoContext(ctx, "Batch sync finished", slog.Int("users", batch.Synced))

	return batch, nil
}

// DispatchAll publishes one sync request per connected (user, provider) pair.
func (srv *syncService) DispatchAll(ctx context.Context) (int, error) {
	users, err := srv.connectedByUser(ctx)
	if err != nil {
		return 0, err
	}

	logger := srv.log(ctx)
	requestID := deliverycontext.RequestID(ctx)

	var dispatched, failed int
	for _, user := range users {
		for _, provider := range user.providers {
			event := &service.SyncRequestedEvent{
				RequestID: requestID,
				UserID:    user.userID.String(),
				Provider:  provider.String(),
			}
			if err := srv.publisher.PublishSyncRequested(ctx, event); err != nil {
				failed++
				logger.ErrorContext(ctx, "Failed to publish sync request",
					slog.String("userID", event.UserID),
					slog.String("provider", event.Provider),
					slog.Any("error", err),
				)

				continue
			}
			dispatched++
		}
	}

	if dispatched == 0 && failed > 0 {
		return 0, errors.Errorf("failed to publish all %d sync requests", failed)
	}

	logger.InfoContext(ctx, "Dispatched sync requests", slog.Int("dispatched", dispatched), slog.Int("failed", failed))

	return dispatched, nil
}

func (srv *syncService) ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SyncLogEntry, error) {
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}

	entries, err := srv.syncLogs.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sync logs")
	}

	return entries, nil
}

type userConnections struct {
	userID    uuid.UUID
	providers []entity.Provider
}

// connectedByUser groups every stored credential by user, keeping first-seen order.
func (srv *syncService) connectedByUser(ctx context.Context) ([]userConnections, error) {
	pairs, err := srv.tokenRepo.ListConnected(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connected users")
	}

	index := make(map[uuid.UUID]int)
	var users []userConnections
	for _, pair := range pairs {
		i, ok := index[pair.UserID]
		if !ok {
			i = len(users)
			index[pair.UserID] = i
			users = append(users, userConnections{userID: pair.UserID})
		}
		users[i].providers = append(users[i].providers, pair.Provider)
	}

	return users, nil
}
