package usecase

import (
	"context"

	"cortex/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionUsecase drives the OAuth connect flow and manages stored connections.
type ConnectionUsecase interface {
	// AuthorizationURL issues CSRF state for the user and returns the provider consent URL.
	AuthorizationURL(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, error)

	// HandleCallback validates state, exchanges the code and stores the tokens.
	// It returns the user that started the flow.
	HandleCallback(ctx context.Context, provider entity.Provider, code, state string) (uuid.UUID, error)

	List(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error)
	Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error
}
