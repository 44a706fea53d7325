// Package measure holds the unit conversions and derived body metrics used when
// provider records are turned into stored rows.
package measure

import (
	"math"
	"time"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

const kcalPerKilojoule = 0.239006

// Scaled is a provider integer mantissa with a power-of-ten exponent.
// The real value is Value * 10^Unit.
type Scaled struct {
	Value int64
	Unit  int
}

// Float returns the decoded real value.
func (s Scaled) Float() float64 {
	// Dividing keeps exact decimals such as 72500e-3 exact.
	if s.Unit < 0 {
		return float64(s.Value) / math.Pow10(-s.Unit)
	}

	return float64(s.Value) * math.Pow10(s.Unit)
}

// BMI returns weight / height^2 rounded to one decimal place.
// It returns nil when either input is missing or height is not positive.
func BMI(weightKg, heightM *float64) *float64 {
	if weightKg == nil || heightM == nil || *heightM <= 0 {
		return nil
	}

	h := *heightM
	bmi := roundTo(*weightKg/(h*h), 1)

	return &bmi
}

// BMR computes the Mifflin-St Jeor basal metabolic rate rounded to the nearest kcal.
// Every input is required; a missing one yields nil.
func BMR(weightKg, heightCm *float64, age *int, sex *Sex) *int {
	if weightKg == nil || heightCm == nil || age == nil || sex == nil {
		return nil
	}

	base := 10*(*weightKg) + 6.25*(*heightCm) - 5*float64(*age)

	switch *sex {
	case SexMale:
		base += 5
	case SexFemale:
		base -= 161
	default:
		return nil
	}

	bmr := int(math.Round(base))

	return &bmr
}

// KilojoulesToKcal converts energy and rounds to the nearest kcal.
func KilojoulesToKcal(kj *float64) *int {
	if kj == nil {
		return nil
	}

	kcal := int(math.Round(*kj * kcalPerKilojoule))

	return &kcal
}

// AgeAt returns completed years between dob and at.
func AgeAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}

	return years
}

// CentimetresToMetres converts a profile height.
func CentimetresToMetres(cm *float64) *float64 {
	if cm == nil {
		return nil
	}

	m := *cm / 100

	return &m
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)

	return math.Round(v*p) / p
}
