package postgres

import (
	"context"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements repository.ProfileRepository.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"height_cm":     profileM.HeightCm,
				"date_of_birth": profileM.DateOfBirth,
				"gender":        profileM.Gender,
				"updated_at":    time.Now(),
			}),
		}).
		Create(profileM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile values out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		HeightCm:    data.HeightCm,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.UserProfile) *model.UserProfileModel {
	return &model.UserProfileModel{
		ID:          profile.ID,
		UserID:      profile.UserID,
		HeightCm:    profile.HeightCm,
		DateOfBirth: profile.DateOfBirth,
		Gender:      profile.Gender,
	}
}
