package validator

import (
	"testing"

	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	height := 320.0
	gender := "other"
	dob := "17/05/1990"

	err := New().Validate(&usecase.UpdateProfileInput{HeightCm: &height, Gender: &gender, DateOfBirth: &dob})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "height_cm must be at most 300")
	assert.Contains(t, appErr.Details(), "gender must be one of [male female]")
	assert.Contains(t, appErr.Details(), "date_of_birth must use the format 2006-01-02")
}

func TestCustomValidator_EmptyProfileIsValid(t *testing.T) {
	assert.NoError(t, New().Validate(&usecase.UpdateProfileInput{}))
}
