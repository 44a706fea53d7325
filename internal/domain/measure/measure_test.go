package measure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestScaled_Float(t *testing.T) {
	tests := []struct {
		name string
		in   Scaled
		want float64
	}{
		{name: "grams to kg", in: Scaled{Value: 70000, Unit: -3}, want: 70},
		{name: "height in cm", in: Scaled{Value: 175, Unit: -2}, want: 1.75},
		{name: "no exponent", in: Scaled{Value: 12, Unit: 0}, want: 12},
		{name: "positive exponent", in: Scaled{Value: 3, Unit: 2}, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.Float(), 1e-9)
		})
	}
}

func TestBMI(t *testing.T) {
	got := BMI(ptr(70.0), ptr(1.75))
	require.NotNil(t, got)
	assert.Equal(t, 22.9, *got)

	assert.Nil(t, BMI(ptr(70.0), nil))
	assert.Nil(t, BMI(nil, ptr(1.75)))
	assert.Nil(t, BMI(ptr(70.0), ptr(0.0)))
}

func TestBMR(t *testing.T) {
	male := SexMale
	female := SexFemale

	got := BMR(ptr(70.0), ptr(175.0), ptr(30), &male)
	require.NotNil(t, got)
	assert.Equal(t, 1649, *got)

	got = BMR(ptr(70.0), ptr(175.0), ptr(30), &female)
	require.NotNil(t, got)
	assert.Equal(t, 1483, *got)

	assert.Nil(t, BMR(ptr(70.0), ptr(175.0), nil, &male))
	assert.Nil(t, BMR(ptr(70.0), nil, ptr(30), &male))
	assert.Nil(t, BMR(ptr(70.0), ptr(175.0), ptr(30), nil))
}

func TestKilojoulesToKcal(t *testing.T) {
	got := KilojoulesToKcal(ptr(1000.0))
	require.NotNil(t, got)
	assert.Equal(t, 239, *got)

	assert.Nil(t, KilojoulesToKcal(nil))
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(1994, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, AgeAt(dob, time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, AgeAt(dob, time.Date(2024, time.June, 14, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, AgeAt(dob, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
