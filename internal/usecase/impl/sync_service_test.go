package impl

import (
	"context"
	"testing"
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"
	mockService "cortex/internal/mocks/service"
	mockUsecase "cortex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type syncFixtures struct {
	service      *syncService
	tokens       *mockUsecase.MockTokenUsecase
	whoopAPI     *mockService.MockWhoopAPI
	withingsAPI  *mockService.MockWithingsAPI
	publisher    *mockService.MockEventPublisher
	tokenRepo    *fakeTokenRepo
	store        *fakeSyncStore
	whoopRepo    *fakeWhoopRepo
	withingsRepo *fakeWithingsRepo
}

func createTestSyncService(t *testing.T, connected ...entity.UserProvider) syncFixtures {
	logger := newDiscardLogger()

	var tokens []*entity.OAuthToken
	for _, c := range connected {
		tokens = append(tokens, &entity.OAuthToken{UserID: c.UserID, Provider: c.Provider, Version: 1})
	}

	fx := syncFixtures{
		tokens:       mockUsecase.NewMockTokenUsecase(t),
		whoopAPI:     mockService.NewMockWhoopAPI(t),
		withingsAPI:  mockService.NewMockWithingsAPI(t),
		publisher:    mockService.NewMockEventPublisher(t),
		tokenRepo:    newFakeTokenRepo(tokens...),
		store:        newFakeSyncStore(),
		whoopRepo:    newFakeWhoopRepo(),
		withingsRepo: newFakeWithingsRepo(),
	}

	fx.service = newSyncService(syncDeps{
		tokens:    fx.tokens,
		txManager: fakeTxManager{tokens: fx.tokenRepo, store: fx.store},
		tokenRepo: fx.tokenRepo,
		syncLogs:  fx.store,
		cursors:   fakeCursorRepo{store: fx.store},
		publisher: fx.publisher,
		syncers: []providerSyncer{
			newWhoopSyncer(fx.whoopAPI, fx.whoopRepo, fixedClock(testNow), logger),
			newWithingsSyncer(fx.withingsAPI, fx.withingsRepo, newFakeProfileRepo(), fixedClock(testNow), logger),
		},
		cfg:    newTestSyncConfig(),
		now:    fixedClock(testNow),
		logger: logger,
	})

	return fx
}

func whoopFixtureRecords() ([]*service.WhoopCycleRecord, []*service.WhoopRecoveryRecord, []*service.WhoopSleepRecord, []*service.WhoopWorkoutRecord) {
	cycles := []*service.WhoopCycleRecord{{
		ID:         "93845",
		Start:      "2025-03-09T06:25:14.000Z",
		ScoreState: "SCORED",
		Score:      &service.CycleScore{Strain: 5.2, Kilojoule: 8288.3, AverageHeartRate: 68, MaxHeartRate: 141},
	}}
	recoveries := []*service.WhoopRecoveryRecord{{
		CycleID:    "93845",
		SleepID:    "ecfc6a15-4661-442f-a9a4-f160dd7afae8",
		CreatedAt:  "2025-03-09T11:25:44.774Z",
		ScoreState: "SCORED",
		Score:      &service.RecoveryScore{RecoveryScore: 44, RestingHeartRate: 64, HRVRmssdMilli: 31.8},
	}}
	sleeps := []*service.WhoopSleepRecord{{
		ID:         "ecfc6a15-4661-442f-a9a4-f160dd7afae8",
		Start:      "2025-03-08T23:10:00.000Z",
		End:        "2025-03-09T06:25:14.000Z",
		ScoreState: "SCORED",
	}}
	workouts := []*service.WhoopWorkoutRecord{{
		ID:         "1043",
		Start:      "2025-03-09T17:00:00.000Z",
		End:        "2025-03-09T18:00:00.000Z",
		ScoreState: "SCORED",
		Score:      &service.WorkoutScore{Strain: 8.1, Kilojoule: 1000},
	}}

	return cycles, recoveries, sleeps, workouts
}

// expectWhoopFetch stubs every WHOOP endpoint and reports the window of the cycles call.
func (fx syncFixtures) expectWhoopFetch(window *entity.SyncWindow) {
	cycles, recoveries, sleeps, workouts := whoopFixtureRecords()

	fx.whoopAPI.EXPECT().FetchCycles(mock.Anything, "access", mock.Anything).
		Run(func(_ context.Context, _ string, w entity.SyncWindow) {
			if window != nil {
				*window = w
			}
		}).
		Return(cycles, nil)
	fx.whoopAPI.EXPECT().FetchRecoveries(mock.Anything, "access", mock.Anything).Return(recoveries, nil)
	fx.whoopAPI.EXPECT().FetchSleeps(mock.Anything, "access", mock.Anything).Return(sleeps, nil)
	fx.whoopAPI.EXPECT().FetchWorkouts(mock.Anything, "access", mock.Anything).Return(workouts, nil)
}

func TestSyncService_Sync_NoValidToken(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("", false).Once()

	result := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, false)

	assert.Equal(t, entity.SyncResult{Success: false, Records: 0, Error: "No valid token"}, result)
	assert.Empty(t, fx.store.entriesFor(userID, entity.ProviderWhoop))
}

func TestSyncService_Sync_UnsupportedProvider(t *testing.T) {
	fx := createTestSyncService(t)

	result := fx.service.Sync(context.Background(), uuid.New(), entity.Provider("garmin"), false)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "garmin")
}

func TestSyncService_Sync_InitialWindow(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()

	// A cursor exists, but an initial sync ignores it.
	require.NoError(t, fakeCursorRepo{store: fx.store}.Upsert(context.Background(), &entity.SyncCursor{
		UserID: userID, Provider: entity.ProviderWhoop, LastSyncedAt: testNow.Add(-time.Hour),
	}))

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	var window entity.SyncWindow
	fx.expectWhoopFetch(&window)

	result := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, true)

	require.True(t, result.Success, result.Error)
	assert.Equal(t, 4, result.Records)
	assert.Equal(t, testNow.AddDate(0, 0, -30), window.Start)
	assert.Equal(t, testNow, window.End)

	entries := fx.store.entriesFor(userID, entity.ProviderWhoop)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.SyncStatusCompleted, entries[0].Status)
	assert.Equal(t, 4, entries[0].RecordsSynced)

	cursor, err := fakeCursorRepo{store: fx.store}.Find(context.Background(), userID, entity.ProviderWhoop)
	require.NoError(t, err)
	assert.Equal(t, testNow, cursor.LastSyncedAt)
	assert.Equal(t, entries[0].ID, cursor.SyncLogID)
}

func TestSyncService_Sync_IncrementalWindow(t *testing.T) {
	tests := []struct {
		name      string
		seed      func(fx syncFixtures, userID uuid.UUID)
		wantStart time.Time
	}{
		{
			name: "cursor",
			seed: func(fx syncFixtures, userID uuid.UUID) {
				_ = fakeCursorRepo{store: fx.store}.Upsert(context.Background(), &entity.SyncCursor{
					UserID: userID, Provider: entity.ProviderWhoop, LastSyncedAt: testNow.Add(-6 * time.Hour),
				})
			},
			wantStart: testNow.Add(-6 * time.Hour),
		},
		{
			name: "latest completed log",
			seed: func(fx syncFixtures, userID uuid.UUID) {
				completedAt := testNow.Add(-2 * time.Hour)
				fx.store.entries = append(fx.store.entries, &entity.SyncLogEntry{
					ID: uuid.New(), UserID: userID, Provider: entity.ProviderWhoop,
					Status: entity.SyncStatusCompleted, CompletedAt: &completedAt,
				})
			},
			wantStart: testNow.Add(-2 * time.Hour),
		},
		{
			name:      "no history",
			seed:      func(syncFixtures, uuid.UUID) {},
			wantStart: testNow.AddDate(0, 0, -30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSyncService(t)
			userID := uuid.New()
			tt.seed(fx, userID)

			fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
			var window entity.SyncWindow
			fx.expectWhoopFetch(&window)

			result := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, false)

			require.True(t, result.Success, result.Error)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, testNow, window.End)
		})
	}
}

func TestSyncService_Sync_NextWindowStartsAtPreviousCompletion(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.now = steppingClock(testNow, time.Minute)
	userID := uuid.New()

	var windows []entity.SyncWindow
	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWithings).Return("access", true)
	fx.withingsAPI.EXPECT().FetchMeasureGroups(mock.Anything, "access", mock.Anything).
		Run(func(_ context.Context, _ string, w entity.SyncWindow) {
			windows = append(windows, w)
		}).
		Return(nil, nil).Times(2)

	first := fx.service.Sync(context.Background(), userID, entity.ProviderWithings, false)
	require.True(t, first.Success, first.Error)

	entries := fx.store.entriesFor(userID, entity.ProviderWithings)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].CompletedAt)
	completedAt := *entries[0].CompletedAt
	assert.True(t, completedAt.After(entries[0].StartedAt))

	cursor, err := fakeCursorRepo{store: fx.store}.Find(context.Background(), userID, entity.ProviderWithings)
	require.NoError(t, err)
	assert.Equal(t, completedAt, cursor.LastSyncedAt)

	second := fx.service.Sync(context.Background(), userID, entity.ProviderWithings, false)
	require.True(t, second.Success, second.Error)

	require.Len(t, windows, 2)
	assert.Equal(t, completedAt, windows[1].Start)
}

func TestSyncService_Sync_RerunIsIdempotent(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	fx.expectWhoopFetch(nil)

	first := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, true)
	second := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, true)

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.Equal(t, 4, fx.whoopRepo.rowCount())
	assert.Len(t, fx.store.entriesFor(userID, entity.ProviderWhoop), 2)
}

func TestSyncService_Sync_FailedUpsertIsSkipped(t *testing.T) {
	fx := createTestSyncService(t)
	fx.whoopRepo.failCycles = true
	userID := uuid.New()

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	fx.expectWhoopFetch(nil)

	result := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, false)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Records)
}

func TestSyncService_Sync_FetchFailureMarksLogFailed(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()
	cycles, recoveries, _, workouts := whoopFixtureRecords()

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	fx.whoopAPI.EXPECT().FetchCycles(mock.Anything, "access", mock.Anything).Return(cycles, nil)
	fx.whoopAPI.EXPECT().FetchRecoveries(mock.Anything, "access", mock.Anything).Return(recoveries, nil)
	fx.whoopAPI.EXPECT().FetchSleeps(mock.Anything, "access", mock.Anything).Return(nil, errors.New("whoop returned 500"))
	fx.whoopAPI.EXPECT().FetchWorkouts(mock.Anything, "access", mock.Anything).Return(workouts, nil)

	result := fx.service.Sync(context.Background(), userID, entity.ProviderWhoop, false)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Records)
	assert.Contains(t, result.Error, "whoop returned 500")
	assert.Zero(t, fx.whoopRepo.rowCount())

	entries := fx.store.entriesFor(userID, entity.ProviderWhoop)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.SyncStatusFailed, entries[0].Status)
	require.NotNil(t, entries[0].ErrorMessage)
	assert.Contains(t, *entries[0].ErrorMessage, "whoop returned 500")

	_, err := fakeCursorRepo{store: fx.store}.Find(context.Background(), userID, entity.ProviderWhoop)
	assert.Error(t, err)
}

func TestSyncService_Sync_ZeroRecordsSucceeds(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWithings).Return("access", true)
	fx.withingsAPI.EXPECT().FetchMeasureGroups(mock.Anything, "access", mock.Anything).Return(nil, nil)

	result := fx.service.Sync(context.Background(), userID, entity.ProviderWithings, false)

	assert.Equal(t, entity.SyncResult{Success: true, Records: 0}, result)
}

func TestSyncService_SyncUser_AllConnectedProviders(t *testing.T) {
	userID := uuid.New()
	fx := createTestSyncService(t,
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWhoop},
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWithings},
	)

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWithings).Return("", false)
	fx.expectWhoopFetch(nil)

	results, err := fx.service.SyncUser(context.Background(), userID, false)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[entity.ProviderWhoop].Success)
	assert.Equal(t, entity.NoValidTokenMessage, results[entity.ProviderWithings].Error)
}

func TestSyncService_SyncAll_IsolatesFailures(t *testing.T) {
	failing := uuid.New()
	healthy := uuid.New()
	fx := createTestSyncService(t,
		entity.UserProvider{UserID: failing, Provider: entity.ProviderWhoop},
		entity.UserProvider{UserID: healthy, Provider: entity.ProviderWhoop},
	)

	fx.tokens.EXPECT().GetValidToken(mock.Anything, failing, entity.ProviderWhoop).Return("", false)
	fx.tokens.EXPECT().GetValidToken(mock.Anything, healthy, entity.ProviderWhoop).Return("access", true)
	fx.expectWhoopFetch(nil)

	batch, err := fx.service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, batch.Synced)
	assert.False(t, batch.Results[failing][entity.ProviderWhoop].Success)
	assert.True(t, batch.Results[healthy][entity.ProviderWhoop].Success)
	assert.Equal(t, 4, batch.Results[healthy][entity.ProviderWhoop].Records)
}

func TestSyncService_SyncAll_FailedUpsertDoesNotAffectOtherProvider(t *testing.T) {
	userID := uuid.New()
	fx := createTestSyncService(t,
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWhoop},
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWithings},
	)
	fx.withingsRepo.failMeasurements = true

	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWhoop).Return("access", true)
	fx.tokens.EXPECT().GetValidToken(mock.Anything, userID, entity.ProviderWithings).Return("access", true)
	fx.expectWhoopFetch(nil)
	fx.withingsAPI.EXPECT().FetchMeasureGroups(mock.Anything, "access", mock.Anything).
		Return([]*service.WithingsMeasureGroup{{
			GrpID:    101,
			Date:     testNow.Add(-time.Hour).Unix(),
			Category: 1,
			Measures: []service.WithingsMeasure{{Value: 72500, Type: withingsWeight, Unit: -3}},
		}}, nil)

	batch, err := fx.service.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, batch.Synced)

	whoop := batch.Results[userID][entity.ProviderWhoop]
	assert.True(t, whoop.Success)
	assert.Equal(t, 4, whoop.Records)
	assert.Equal(t, 4, fx.whoopRepo.rowCount())

	withings := batch.Results[userID][entity.ProviderWithings]
	assert.True(t, withings.Success)
	assert.Zero(t, withings.Records)
	assert.Zero(t, fx.withingsRepo.rowCount())

	entries := fx.store.entriesFor(userID, entity.ProviderWithings)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.SyncStatusCompleted, entries[0].Status)
	assert.Zero(t, entries[0].RecordsSynced)
}

func TestSyncService_DispatchAll(t *testing.T) {
	userID := uuid.New()
	fx := createTestSyncService(t,
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWhoop},
		entity.UserProvider{UserID: userID, Provider: entity.ProviderWithings},
	)

	var published []string
	fx.publisher.EXPECT().PublishSyncRequested(mock.Anything, mock.AnythingOfType("*service.SyncRequestedEvent")).
		Run(func(_ context.Context, event *service.SyncRequestedEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			published = append(published, event.Provider)
		}).
		Return(nil).Times(2)

	dispatched, err := fx.service.DispatchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, dispatched)
	assert.ElementsMatch(t, []string{"whoop", "withings"}, published)
}

func TestSyncService_DispatchAll_AllPublishesFail(t *testing.T) {
	fx := createTestSyncService(t, entity.UserProvider{UserID: uuid.New(), Provider: entity.ProviderWhoop})

	fx.publisher.EXPECT().PublishSyncRequested(mock.Anything, mock.Anything).Return(errors.New("topic not found")).Once()

	dispatched, err := fx.service.DispatchAll(context.Background())

	require.Error(t, err)
	assert.Zero(t, dispatched)
}

func TestSyncService_ListLogs_ClampsLimit(t *testing.T) {
	fx := createTestSyncService(t)
	userID := uuid.New()
	for range 60 {
		require.NoError(t, fx.store.Create(context.Background(), &entity.SyncLogEntry{UserID: userID, Provider: entity.ProviderWhoop}))
	}

	entries, err := fx.service.ListLogs(context.Background(), userID, 500)

	require.NoError(t, err)
	assert.Len(t, entries, defaultLogLimit)
}
