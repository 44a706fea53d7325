package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted in a user profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// UserProfile holds the demographics needed for derived metrics.
type UserProfile struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	HeightCm    *float64   `json:"height_cm,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
