package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenValidityMargin is the minimum remaining lifetime for a stored access token to be used as-is.
const TokenValidityMargin = 5 * time.Minute

// OAuthToken is the decrypted credential pair held for one (user, provider).
type OAuthToken struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       Provider
	AccessToken    string
	RefreshToken   string
	TokenType      string
	Scopes         string
	ExpiresAt      time.Time
	ProviderUserID string
	// Version increments on every write so concurrent refreshers can detect a lost race.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUsable reports whether the access token outlives now by more than TokenValidityMargin.
func (t *OAuthToken) IsUsable(now time.Time) bool {
	return t.ExpiresAt.Sub(now) > TokenValidityMargin
}

// TokenGrant is what a provider returns from a code exchange or refresh.
type TokenGrant struct {
	AccessToken    string
	RefreshToken   string
	TokenType      string
	Scopes         string
	ExpiresIn      time.Duration
	ProviderUserID string
}

// Connection is the public view of a stored token row.
type Connection struct {
	Provider  Provider  `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProvider names one connected (user, provider) pair.
type UserProvider struct {
	UserID   uuid.UUID
	Provider Provider
}
