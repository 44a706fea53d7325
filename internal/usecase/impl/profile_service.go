package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// earliestDateOfBirth is the lower bound accepted for a birth date.
var earliestDateOfBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		now:         time.Now,
		logger:      logger,
	}
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).DebugContext(ctx, "Getting user profile", slog.String("userID", userID.String()))

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &entity.UserProfile{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile replaces every field; a nil input field clears the stored value.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}

	profile := &entity.UserProfile{
		UserID:   userID,
		HeightCm: input.HeightCm,
		Gender:   input.Gender,
	}

	if input.HeightCm != nil && (*input.HeightCm < 50 || *input.HeightCm > 300) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("height must be between 50 and 300 cm"))
	}
	if input.Gender != nil && *input.Gender != entity.GenderMale && *input.Gender != entity.GenderFemale {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("gender must be 'male' or 'female'"))
	}
	if input.DateOfBirth != nil {
		dob, err := srv.parseDateOfBirth(*input.DateOfBirth)
		if err != nil {
			return nil, err
		}
		profile.DateOfBirth = &dob
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).InfoContext(ctx, "Profile updated", slog.String("userID", userID.String()))

	return profile, nil
}

func (srv *profileService) parseDateOfBirth(value string) (time.Time, error) {
	dob, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid date of birth"))
	}
	if dob.Before(earliestDateOfBirth) || dob.After(srv.now()) {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("date of birth must be between 1900-01-01 and today"))
	}

	return dob, nil
}
