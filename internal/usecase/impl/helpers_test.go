package impl

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var testNow = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// steppingClock returns start on the first call and moves forward by step on every call after.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		current := next
		next = next.Add(step)

		return current
	}
}

func newTestSyncConfig() *config.SyncConfig {
	return &config.SyncConfig{
		LookbackDays:       30,
		AttemptTimeout:     time.Minute,
		MaxConcurrentUsers: 2,
	}
}

// fakeTokenRepo is an in-memory TokenRepository with the same version semantics as Postgres.
type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.OAuthToken
	writes int
}

func newFakeTokenRepo(tokens ...*entity.OAuthToken) *fakeTokenRepo {
	repo := &fakeTokenRepo{tokens: make(map[string]*entity.OAuthToken)}
	for _, token := range tokens {
		cp := *token
		repo.tokens[tokenKey(token.UserID, token.Provider)] = &cp
	}

	return repo
}

func tokenKey(userID uuid.UUID, provider entity.Provider) string {
	return userID.String() + ":" + provider.String()
}

func (r *fakeTokenRepo) Find(_ context.Context, userID uuid.UUID, provider entity.Provider) (*entity.OAuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenKey(userID, provider)]
	if !ok {
		return nil, repository.ErrTokenNotFound
	}
	cp := *token

	return &cp, nil
}

func (r *fakeTokenRepo) Upsert(_ context.Context, token *entity.OAuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *token
	if existing, ok := r.tokens[tokenKey(token.UserID, token.Provider)]; ok {
		cp.Version = existing.Version + 1
	} else {
		cp.Version = 1
	}
	r.tokens[tokenKey(token.UserID, token.Provider)] = &cp
	r.writes++

	return nil
}

func (r *fakeTokenRepo) UpdateIfVersion(_ context.Context, token *entity.OAuthToken, expectedVersion int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tokens[tokenKey(token.UserID, token.Provider)]
	if !ok || existing.Version != expectedVersion {
		return false, nil
	}
	cp := *token
	cp.Version = expectedVersion + 1
	r.tokens[tokenKey(token.UserID, token.Provider)] = &cp
	r.writes++

	return true, nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, userID uuid.UUID, provider entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[tokenKey(userID, provider)]; !ok {
		return repository.ErrTokenNotFound
	}
	delete(r.tokens, tokenKey(userID, provider))

	return nil
}

func (r *fakeTokenRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.OAuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.OAuthToken
	for _, token := range r.tokens {
		if token.UserID == userID {
			cp := *token
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *entity.OAuthToken) int { return cmp.Compare(a.Provider.String(), b.Provider.String()) })

	return out, nil
}

func (r *fakeTokenRepo) ListConnected(_ context.Context) ([]entity.UserProvider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.UserProvider, 0, len(r.tokens))
	for _, token := range r.tokens {
		out = append(out, entity.UserProvider{UserID: token.UserID, Provider: token.Provider})
	}
	slices.SortFunc(out, func(a, b entity.UserProvider) int {
		return cmp.Compare(tokenKey(a.UserID, a.Provider), tokenKey(b.UserID, b.Provider))
	})

	return out, nil
}

// fakeSyncStore keeps sync log entries and cursors in memory.
type fakeSyncStore struct {
	mu      sync.Mutex
	entries []*entity.SyncLogEntry
	cursors map[string]*entity.SyncCursor
}

func newFakeSyncStore() *fakeSyncStore {
	return &fakeSyncStore{cursors: make(map[string]*entity.SyncCursor)}
}

func (s *fakeSyncStore) Create(_ context.Context, entry *entity.SyncLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New()
	entry.Status = entity.SyncStatusStarted
	cp := *entry
	s.entries = append(s.entries, &cp)

	return nil
}

func (s *fakeSyncStore) finalize(id uuid.UUID, apply func(*entity.SyncLogEntry)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID != id {
			continue
		}
		if entry.Status.IsTerminal() {
			return repository.ErrSyncLogFinalized
		}
		apply(entry)

		return nil
	}

	return repository.ErrSyncLogNotFound
}

func (s *fakeSyncStore) MarkCompleted(_ context.Context, id uuid.UUID, records int, completedAt time.Time) error {
	return s.finalize(id, func(e *entity.SyncLogEntry) {
		e.Status = entity.SyncStatusCompleted
		e.RecordsSynced = records
		e.CompletedAt = &completedAt
	})
}

func (s *fakeSyncStore) MarkFailed(_ context.Context, id uuid.UUID, message string, completedAt time.Time) error {
	return s.finalize(id, func(e *entity.SyncLogEntry) {
		e.Status = entity.SyncStatusFailed
		e.ErrorMessage = &message
		e.CompletedAt = &completedAt
	})
}

func (s *fakeSyncStore) LatestCompleted(_ context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *entity.SyncLogEntry
	for _, entry := range s.entries {
		if entry.UserID != userID || entry.Provider != provider || entry.Status != entity.SyncStatusCompleted {
			continue
		}
		if latest == nil || entry.CompletedAt.After(*latest.CompletedAt) {
			latest = entry
		}
	}
	if latest == nil {
		return nil, repository.ErrSyncLogNotFound
	}
	cp := *latest

	return &cp, nil
}

func (s *fakeSyncStore) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.SyncLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.SyncLogEntry
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if s.entries[i].UserID == userID {
			cp := *s.entries[i]
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (s *fakeSyncStore) entriesFor(userID uuid.UUID, provider entity.Provider) []*entity.SyncLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.SyncLogEntry
	for _, entry := range s.entries {
		if entry.UserID == userID && entry.Provider == provider {
			cp := *entry
			out = append(out, &cp)
		}
	}

	return out
}

// fakeCursorRepo exposes the cursor half of fakeSyncStore.
type fakeCursorRepo struct {
	store *fakeSyncStore
}

func (c fakeCursorRepo) Find(_ context.Context, userID uuid.UUID, provider entity.Provider) (*entity.SyncCursor, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cursor, ok := c.store.cursors[tokenKey(userID, provider)]
	if !ok {
		return nil, repository.ErrCursorNotFound
	}
	cp := *cursor

	return &cp, nil
}

func (c fakeCursorRepo) Upsert(_ context.Context, cursor *entity.SyncCursor) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	cp := *cursor
	c.store.cursors[tokenKey(cursor.UserID, cursor.Provider)] = &cp

	return nil
}

// fakeTxManager runs fn directly against the in-memory stores.
type fakeTxManager struct {
	tokens *fakeTokenRepo
	store  *fakeSyncStore
}

func (tm fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm fakeTxManager) TokenRepo() repository.TokenRepository {
	return tm.tokens
}

func (tm fakeTxManager) SyncLogRepo() repository.SyncLogRepository {
	return tm.store
}

func (tm fakeTxManager) SyncCursorRepo() repository.SyncCursorRepository {
	return fakeCursorRepo{store: tm.store}
}

// fakeWhoopRepo stores rows keyed by their upsert key, so replays overwrite.
type fakeWhoopRepo struct {
	mu         sync.Mutex
	cycles     map[string]*entity.WhoopCycle
	recoveries map[string]*entity.WhoopRecovery
	sleeps     map[string]*entity.WhoopSleep
	workouts   map[string]*entity.WhoopWorkout
	failCycles bool
}

func newFakeWhoopRepo() *fakeWhoopRepo {
	return &fakeWhoopRepo{
		cycles:     make(map[string]*entity.WhoopCycle),
		recoveries: make(map[string]*entity.WhoopRecovery),
		sleeps:     make(map[string]*entity.WhoopSleep),
		workouts:   make(map[string]*entity.WhoopWorkout),
	}
}

func (r *fakeWhoopRepo) UpsertCycles(_ context.Context, cycles []*entity.WhoopCycle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCycles {
		return errors.New("cycles table unavailable")
	}
	for _, c := range cycles {
		r.cycles[c.UserID.String()+":"+c.WhoopCycleID] = c
	}

	return nil
}

func (r *fakeWhoopRepo) UpsertRecoveries(_ context.Context, recoveries []*entity.WhoopRecovery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range recoveries {
		r.recoveries[rec.UserID.String()+":"+rec.WhoopCycleID] = rec
	}

	return nil
}

func (r *fakeWhoopRepo) UpsertSleeps(_ context.Context, sleeps []*entity.WhoopSleep) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range sleeps {
		r.sleeps[s.UserID.String()+":"+s.WhoopSleepID] = s
	}

	return nil
}

func (r *fakeWhoopRepo) UpsertWorkouts(_ context.Context, workouts []*entity.WhoopWorkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range workouts {
		r.workouts[w.UserID.String()+":"+w.WhoopWorkoutID] = w
	}

	return nil
}

func (r *fakeWhoopRepo) FindCycles(context.Context, uuid.UUID, entity.SyncWindow) ([]*entity.WhoopCycle, error) {
	return nil, nil
}

func (r *fakeWhoopRepo) FindRecoveries(context.Context, uuid.UUID, entity.SyncWindow) ([]*entity.WhoopRecovery, error) {
	return nil, nil
}

func (r *fakeWhoopRepo) FindSleeps(context.Context, uuid.UUID, entity.SyncWindow) ([]*entity.WhoopSleep, error) {
	return nil, nil
}

func (r *fakeWhoopRepo) FindWorkouts(context.Context, uuid.UUID, entity.SyncWindow) ([]*entity.WhoopWorkout, error) {
	return nil, nil
}

func (r *fakeWhoopRepo) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.cycles) + len(r.recoveries) + len(r.sleeps) + len(r.workouts)
}

// fakeWithingsRepo stores measurements keyed by (user, grpid).
type fakeWithingsRepo struct {
	mu           sync.Mutex
	measurements     map[string]*entity.WithingsMeasurement
	storedHeight     *float64
	failMeasurements bool
}

func newFakeWithingsRepo() *fakeWithingsRepo {
	return &fakeWithingsRepo{measurements: make(map[string]*entity.WithingsMeasurement)}
}

func (r *fakeWithingsRepo) UpsertMeasurements(_ context.Context, measurements []*entity.WithingsMeasurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failMeasurements {
		return errors.New("measurements table unavailable")
	}
	for _, m := range measurements {
		r.measurements[fmt.Sprintf("%s:%d", m.UserID, m.WithingsGrpID)] = m
	}

	return nil
}

func (r *fakeWithingsRepo) LatestHeightAtOrBefore(context.Context, uuid.UUID, time.Time) (*float64, error) {
	return r.storedHeight, nil
}

func (r *fakeWithingsRepo) FindMeasurements(context.Context, uuid.UUID, entity.SyncWindow) ([]*entity.WithingsMeasurement, error) {
	return nil, nil
}

func (r *fakeWithingsRepo) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.measurements)
}

func (r *fakeWithingsRepo) byGroup(userID uuid.UUID, grpID int64) *entity.WithingsMeasurement {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.measurements[fmt.Sprintf("%s:%d", userID, grpID)]
}

// fakeProfileRepo holds at most one profile per user.
type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.UserProfile
}

func newFakeProfileRepo(profiles ...*entity.UserProfile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.UserProfile)}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}

	return repo
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return profile, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *entity.UserProfile) error {
	r.profiles[profile.UserID] = profile

	return nil
}
