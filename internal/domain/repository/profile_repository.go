package repository

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrProfileNotFound = errors.New("user profile not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
