package impl

import (
	"math"
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/measure"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
)

// Withings measure type codes.
const (
	withingsWeight      = 1
	withingsHeight      = 4
	withingsFatFreeMass = 5
	withingsFatRatio    = 6
	withingsFatMass     = 8
	withingsMuscleMass  = 76
	withingsHydration   = 77
	withingsBoneMass    = 88
	withingsVO2Max      = 123
	withingsVisceralFat = 170
)

// --- Withings Mapper Functions ---

// toWithingsMeasurement decodes one group into named fields. Unknown codes are ignored.
// Derived metrics are filled in later by the syncer.
func toWithingsMeasurement(userID uuid.UUID, group *service.WithingsMeasureGroup, syncedAt time.Time) *entity.WithingsMeasurement {
	m := &entity.WithingsMeasurement{
		UserID:        userID,
		WithingsGrpID: group.GrpID,
		MeasuredAt:    time.Unix(group.Date, 0).UTC(),
		Category:      group.Category,
		RawJSON:       group.Raw,
		SyncedAt:      syncedAt,
	}

	for _, raw := range group.Measures {
		value := measure.Scaled{Value: raw.Value, Unit: raw.Unit}.Float()

		switch raw.Type {
		case withingsWeight:
			m.WeightKg = ptr(value)
		case withingsHeight:
			m.HeightM = ptr(value)
		case withingsFatFreeMass:
			m.FatFreeMassKg = ptr(value)
		case withingsFatRatio:
			m.FatRatioPct = ptr(value)
		case withingsFatMass:
			m.FatMassKg = ptr(value)
		case withingsMuscleMass:
			m.MuscleMassKg = ptr(value)
		case withingsHydration:
			m.HydrationKg = ptr(value)
		case withingsBoneMass:
			m.BoneMassKg = ptr(value)
		case withingsVO2Max:
			m.VO2Max = ptr(value)
		case withingsVisceralFat:
			m.VisceralFat = ptr(int(math.Round(value)))
		}
	}

	return m
}

// bodyProfile is the subset of the user profile needed for derived metrics.
type bodyProfile struct {
	heightM     *float64
	dateOfBirth *time.Time
	sex         *measure.Sex
}

func newBodyProfile(profile *entity.UserProfile) bodyProfile {
	if profile == nil {
		return bodyProfile{}
	}

	bp := bodyProfile{
		heightM:     measure.CentimetresToMetres(profile.HeightCm),
		dateOfBirth: profile.DateOfBirth,
	}
	if profile.Gender != nil {
		switch *profile.Gender {
		case entity.GenderMale:
			bp.sex = ptr(measure.SexMale)
		case entity.GenderFemale:
			bp.sex = ptr(measure.SexFemale)
		}
	}

	return bp
}

// deriveMetrics fills BMI and BMR using height, the height carried from earlier records,
// and the profile, in that order. It returns the height to carry forward.
func deriveMetrics(m *entity.WithingsMeasurement, carried *float64, profile bodyProfile) *float64 {
	height := m.HeightM
	if height == nil {
		height = carried
	}
	if height == nil {
		height = profile.heightM
	}

	m.BMI = measure.BMI(m.WeightKg, height)

	var age *int
	if profile.dateOfBirth != nil {
		age = ptr(measure.AgeAt(*profile.dateOfBirth, m.MeasuredAt))
	}
	var heightCm *float64
	if height != nil {
		heightCm = ptr(*height * 100)
	}
	m.BMRKcal = measure.BMR(m.WeightKg, heightCm, age, profile.sex)

	if m.HeightM != nil {
		return m.HeightM
	}

	return carried
}
