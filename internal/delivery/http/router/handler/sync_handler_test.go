package handler

import (
	"net/http"
	"testing"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	mockUsecase "cortex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncHandler_SyncProvider(t *testing.T) {
	uc := mockUsecase.NewMockSyncUsecase(t)
	h := NewSyncHandler(uc)
	userID := uuid.New()
	uc.EXPECT().Sync(mock.Anything, userID, entity.ProviderWhoop, true).Return(entity.SyncResult{Success: true, Records: 12}).Once()

	c, rec := newTestContext(http.MethodPost, "/api/sync/whoop?initial=true", "", userID)
	c.SetParamNames("provider")
	c.SetParamValues("whoop")

	require.NoError(t, h.SyncProvider(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":{"success":true,"records":12}`)
}

func TestSyncHandler_SyncAll_ReportsSoftFailures(t *testing.T) {
	uc := mockUsecase.NewMockSyncUsecase(t)
	h := NewSyncHandler(uc)
	userID := uuid.New()
	uc.EXPECT().SyncUser(mock.Anything, userID, false).Return(map[entity.Provider]entity.SyncResult{
		entity.ProviderWhoop:    {Success: true, Records: 4},
		entity.ProviderWithings: entity.FailedSync(entity.NoValidTokenMessage),
	}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/sync", "", userID)

	require.NoError(t, h.SyncAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"withings":{"success":false,"records":0,"error":"No valid token"}`)
}

func TestSyncHandler_Logs(t *testing.T) {
	t.Run("passes limit", func(t *testing.T) {
		uc := mockUsecase.NewMockSyncUsecase(t)
		userID := uuid.New()
		uc.EXPECT().ListLogs(mock.Anything, userID, 5).Return([]*entity.SyncLogEntry{}, nil).Once()
		c, rec := newTestContext(http.MethodGet, "/api/sync/logs?limit=5", "", userID)

		require.NoError(t, NewSyncHandler(uc).Logs(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/api/sync/logs?limit=-1", "", uuid.New())

		err := NewSyncHandler(mockUsecase.NewMockSyncUsecase(t)).Logs(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})
}
