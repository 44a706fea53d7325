package impl

import (
	"context"
	"testing"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	mockRepo "cortex/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDataService_Whoop(t *testing.T) {
	whoopRepo := mockRepo.NewMockWhoopRepository(t)
	svc := NewDataService(whoopRepo, mockRepo.NewMockWithingsRepository(t), newDiscardLogger())
	userID := uuid.New()
	window := entity.SyncWindow{Start: testNow.AddDate(0, 0, -7), End: testNow}

	whoopRepo.EXPECT().FindCycles(mock.Anything, userID, window).Return([]*entity.WhoopCycle{{WhoopCycleID: "1"}}, nil).Once()
	whoopRepo.EXPECT().FindRecoveries(mock.Anything, userID, window).Return(nil, nil).Once()
	whoopRepo.EXPECT().FindSleeps(mock.Anything, userID, window).Return([]*entity.WhoopSleep{{WhoopSleepID: "s"}}, nil).Once()
	whoopRepo.EXPECT().FindWorkouts(mock.Anything, userID, window).Return(nil, nil).Once()

	data, err := svc.Whoop(context.Background(), userID, window)

	require.NoError(t, err)
	assert.Len(t, data.Cycles, 1)
	assert.Len(t, data.Sleeps, 1)
}

func TestDataService_RejectsInvertedWindow(t *testing.T) {
	svc := NewDataService(mockRepo.NewMockWhoopRepository(t), mockRepo.NewMockWithingsRepository(t), newDiscardLogger())

	_, err := svc.Withings(context.Background(), uuid.New(), entity.SyncWindow{Start: testNow, End: testNow.Add(-time.Hour)})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
