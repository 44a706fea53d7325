package service

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderOAuth is the credential capability of one provider: building the consent URL,
// exchanging an authorization code and refreshing an expired access token.
type ProviderOAuth interface {
	Provider() entity.Provider

	// AuthorizationURL builds the consent page URL carrying state.
	AuthorizationURL(state string) string

	// Exchange trades an authorization code for a credential pair.
	Exchange(ctx context.Context, code string) (*entity.TokenGrant, error)

	// Refresh obtains a new credential pair from a refresh token. Any failure,
	// including a provider-level status error, is returned as an error.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenGrant, error)
}

// OAuthStateStore issues and consumes one-time CSRF state values bound to the initiating user.
type OAuthStateStore interface {
	Issue(userID uuid.UUID, provider entity.Provider) (string, error)

	// Consume validates and removes state. ok is false for unknown, reused or expired values.
	Consume(state string) (userID uuid.UUID, provider entity.Provider, ok bool)
}
