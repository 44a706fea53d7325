package usecase

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase reads and updates the demographics used for derived metrics.
type ProfileUsecase interface {
	// GetProfile returns the stored profile, or an empty one when the user has none yet.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.UserProfile, error)
}

// --- Input DTOs ---

// UpdateProfileInput replaces the profile fields. Nil clears a field.
type UpdateProfileInput struct {
	HeightCm    *float64 `json:"height_cm,omitempty" validate:"omitempty,gte=50,lte=300"`
	DateOfBirth *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}
