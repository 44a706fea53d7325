package impl

import (
	"context"
	"testing"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/service"
	mockService "cortex/internal/mocks/service"
	mockUsecase "cortex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectionFixtures struct {
	service   *connectionService
	oauth     *mockService.MockProviderOAuth
	states    *mockService.MockOAuthStateStore
	tokens    *mockUsecase.MockTokenUsecase
	tokenRepo *fakeTokenRepo
}

func createTestConnectionService(t *testing.T, configured bool) connectionFixtures {
	oauth := mockService.NewMockProviderOAuth(t)
	oauth.EXPECT().Provider().Return(entity.ProviderWithings)

	fx := connectionFixtures{
		oauth:     oauth,
		states:    mockService.NewMockOAuthStateStore(t),
		tokens:    mockUsecase.NewMockTokenUsecase(t),
		tokenRepo: newFakeTokenRepo(),
	}
	fx.service = newConnectionService(
		[]service.ProviderOAuth{oauth},
		map[entity.Provider]bool{entity.ProviderWithings: configured},
		fx.states,
		fx.tokens,
		fx.tokenRepo,
		newDiscardLogger(),
	)

	return fx
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestConnectionService_AuthorizationURL(t *testing.T) {
	fx := createTestConnectionService(t, true)
	userID := uuid.New()

	fx.states.EXPECT().Issue(userID, entity.ProviderWithings).Return("state-1", nil).Once()
	fx.oauth.EXPECT().AuthorizationURL("state-1").Return("https://account.withings.com/authorize?state=state-1").Once()

	url, err := fx.service.AuthorizationURL(context.Background(), userID, entity.ProviderWithings)

	require.NoError(t, err)
	assert.Contains(t, url, "state=state-1")
}

func TestConnectionService_AuthorizationURL_Errors(t *testing.T) {
	t.Run("unsupported provider", func(t *testing.T) {
		fx := createTestConnectionService(t, true)

		_, err := fx.service.AuthorizationURL(context.Background(), uuid.New(), entity.ProviderWhoop)

		requireAppError(t, err, "UNSUPPORTED_PROVIDER")
	})

	t.Run("missing credentials", func(t *testing.T) {
		fx := createTestConnectionService(t, false)

		_, err := fx.service.AuthorizationURL(context.Background(), uuid.New(), entity.ProviderWithings)

		requireAppError(t, err, "PROVIDER_NOT_CONFIGURED")
	})
}

func TestConnectionService_HandleCallback_Success(t *testing.T) {
	fx := createTestConnectionService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	grant := &entity.TokenGrant{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3 * time.Hour, ProviderUserID: "363"}

	fx.states.EXPECT().Consume("state-1").Return(userID, entity.ProviderWithings, true).Once()
	fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(grant, nil).Once()
	fx.tokens.EXPECT().StoreTokens(ctx, userID, entity.ProviderWithings, grant).Return(nil).Once()

	got, err := fx.service.HandleCallback(ctx, entity.ProviderWithings, "code-1", "state-1")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestConnectionService_HandleCallback_InvalidState(t *testing.T) {
	tests := []struct {
		name     string
		provider entity.Provider
		ok       bool
	}{
		{name: "unknown state", provider: "", ok: false},
		{name: "issued for another provider", provider: entity.ProviderWhoop, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t, true)
			fx.states.EXPECT().Consume("forged").Return(uuid.New(), tt.provider, tt.ok).Once()

			_, err := fx.service.HandleCallback(context.Background(), entity.ProviderWithings, "code", "forged")

			assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
		})
	}
}

func TestConnectionService_HandleCallback_MissingCode(t *testing.T) {
	fx := createTestConnectionService(t, true)
	fx.states.EXPECT().Consume("state-1").Return(uuid.New(), entity.ProviderWithings, true).Once()

	_, err := fx.service.HandleCallback(context.Background(), entity.ProviderWithings, "", "state-1")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestConnectionService_HandleCallback_ExchangeFailure(t *testing.T) {
	fx := createTestConnectionService(t, true)
	fx.states.EXPECT().Consume("state-1").Return(uuid.New(), entity.ProviderWithings, true).Once()
	fx.oauth.EXPECT().Exchange(mock.Anything, "code-1").Return(nil, errors.New("withings requesttoken status 503")).Once()

	_, err := fx.service.HandleCallback(context.Background(), entity.ProviderWithings, "code-1", "state-1")

	requireAppError(t, err, "OAUTH_EXCHANGE_FAILED")
}

func TestConnectionService_ListAndDisconnect(t *testing.T) {
	fx := createTestConnectionService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, fx.tokenRepo.Upsert(ctx, &entity.OAuthToken{UserID: userID, Provider: entity.ProviderWithings}))
	require.NoError(t, fx.tokenRepo.Upsert(ctx, &entity.OAuthToken{UserID: uuid.New(), Provider: entity.ProviderWhoop}))

	connections, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, entity.ProviderWithings, connections[0].Provider)

	fx.tokens.EXPECT().RemoveTokens(ctx, userID, entity.ProviderWithings).Return(nil).Once()
	require.NoError(t, fx.service.Disconnect(ctx, userID, entity.ProviderWithings))
}
