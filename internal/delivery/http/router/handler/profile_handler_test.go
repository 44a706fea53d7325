package handler

import (
	"net/http"
	"testing"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	mockUsecase "cortex/internal/mocks/usecase"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_Update(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	userID := uuid.New()
	height := 180.0
	uc.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.HeightCm != nil && *in.HeightCm == 180 && in.Gender != nil && *in.Gender == "male"
	})).Return(&entity.UserProfile{UserID: userID, HeightCm: &height}, nil).Once()

	c, rec := newTestContext(http.MethodPut, "/api/profile", `{"height_cm":180,"gender":"male"}`, userID)

	require.NoError(t, NewProfileHandler(uc).Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"height_cm":180`)
}

func TestProfileHandler_Update_Invalid(t *testing.T) {
	c, _ := newTestContext(http.MethodPut, "/api/profile", `{"height_cm":20}`, uuid.New())

	err := NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)).Update(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "height_cm")
}
