// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no credential is stored for a (user, provider).
var ErrTokenNotFound = errors.New("oauth token not found")

// TokenRepository persists provider credentials. Implementations encrypt tokens at rest;
// callers always see plaintext.
type TokenRepository interface {
	// Find returns the stored credential or ErrTokenNotFound.
	Find(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.OAuthToken, error)

	// Upsert inserts or replaces the credential keyed by (user_id, provider).
	Upsert(ctx context.Context, token *entity.OAuthToken) error

	// UpdateIfVersion writes refreshed credentials only when the stored version still equals
	// expectedVersion. It reports false when another writer got there first.
	UpdateIfVersion(ctx context.Context, token *entity.OAuthToken, expectedVersion int64) (bool, error)

	// Delete removes the credential. Missing rows yield ErrTokenNotFound.
	Delete(ctx context.Context, userID uuid.UUID, provider entity.Provider) error

	// ListByUser returns every credential a user holds.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OAuthToken, error)

	// ListConnected returns every (user, provider) pair that has a stored credential.
	ListConnected(ctx context.Context) ([]entity.UserProvider, error)
}
