package impl

import (
	"context"
	"testing"
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWithingsAPI struct {
	groups []*service.WithingsMeasureGroup
}

func (s stubWithingsAPI) FetchMeasureGroups(context.Context, string, entity.SyncWindow) ([]*service.WithingsMeasureGroup, error) {
	return s.groups, nil
}

func TestWithingsSyncer_CarriesHeightInMeasurementOrder(t *testing.T) {
	userID := uuid.New()
	day := func(d int) int64 { return time.Date(2025, time.March, d, 7, 0, 0, 0, time.UTC).Unix() }

	// Out of order on purpose: the height on day 2 must apply to day 3, not day 1.
	api := stubWithingsAPI{groups: []*service.WithingsMeasureGroup{
		{GrpID: 3, Date: day(3), Measures: []service.WithingsMeasure{{Value: 70000, Type: withingsWeight, Unit: -3}}},
		{GrpID: 1, Date: day(1), Measures: []service.WithingsMeasure{{Value: 70000, Type: withingsWeight, Unit: -3}}},
		{GrpID: 2, Date: day(2), Measures: []service.WithingsMeasure{
			{Value: 70000, Type: withingsWeight, Unit: -3},
			{Value: 175, Type: withingsHeight, Unit: -2},
		}},
	}}
	repo := newFakeWithingsRepo()
	heightCm := 180.0
	profiles := newFakeProfileRepo(&entity.UserProfile{UserID: userID, HeightCm: &heightCm})

	syncer := newWithingsSyncer(api, repo, profiles, fixedClock(testNow), newDiscardLogger())
	window := entity.SyncWindow{Start: testNow.AddDate(0, 0, -30), End: testNow}

	records, err := syncer.Run(context.Background(), userID, "access", window)

	require.NoError(t, err)
	assert.Equal(t, 3, records)

	assert.InDelta(t, 21.6, *repo.byGroup(userID, 1).BMI, 1e-9)
	assert.InDelta(t, 22.9, *repo.byGroup(userID, 2).BMI, 1e-9)
	assert.InDelta(t, 22.9, *repo.byGroup(userID, 3).BMI, 1e-9)
	assert.Nil(t, repo.byGroup(userID, 3).HeightM)
}

func TestWithingsSyncer_SeedsHeightFromStoredMeasurement(t *testing.T) {
	userID := uuid.New()
	api := stubWithingsAPI{groups: []*service.WithingsMeasureGroup{
		{GrpID: 7, Date: testNow.Add(-time.Hour).Unix(), Measures: []service.WithingsMeasure{{Value: 70000, Type: withingsWeight, Unit: -3}}},
	}}
	repo := newFakeWithingsRepo()
	repo.storedHeight = ptr(1.75)

	syncer := newWithingsSyncer(api, repo, newFakeProfileRepo(), fixedClock(testNow), newDiscardLogger())

	records, err := syncer.Run(context.Background(), userID, "access", entity.SyncWindow{Start: testNow.AddDate(0, 0, -1), End: testNow})

	require.NoError(t, err)
	assert.Equal(t, 1, records)
	m := repo.byGroup(userID, 7)
	require.NotNil(t, m.BMI)
	assert.InDelta(t, 22.9, *m.BMI, 1e-9)
	assert.Nil(t, m.BMRKcal)
}
