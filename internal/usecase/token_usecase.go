// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase hands out usable provider access tokens, refreshing them when needed.
type TokenUsecase interface {
	// GetValidToken returns a token with more than five minutes of life left. ok is false when
	// nothing is stored or a refresh failed; the caller treats both as "not connected".
	GetValidToken(ctx context.Context, userID uuid.UUID, provider entity.Provider) (accessToken string, ok bool)

	// StoreTokens saves the credential pair from an authorization-code exchange.
	StoreTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider, grant *entity.TokenGrant) error

	// RemoveTokens deletes the stored credential on disconnect.
	RemoveTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider) error
}
