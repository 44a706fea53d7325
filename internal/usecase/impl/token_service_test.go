package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"
	mockRepo "cortex/internal/mocks/repository"
	mockService "cortex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenServiceFixtures struct {
	service   *tokenService
	tokenRepo *mockRepo.MockTokenRepository
	oauth     *mockService.MockProviderOAuth
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	oauth := mockService.NewMockProviderOAuth(t)
	oauth.EXPECT().Provider().Return(entity.ProviderWhoop)

	return tokenServiceFixtures{
		service:   newTokenService(tokenRepo, []service.ProviderOAuth{oauth}, fixedClock(testNow), newDiscardLogger()),
		tokenRepo: tokenRepo,
		oauth:     oauth,
	}
}

func storedToken(userID uuid.UUID, expiresIn time.Duration) *entity.OAuthToken {
	return &entity.OAuthToken{
		UserID:       userID,
		Provider:     entity.ProviderWhoop,
		AccessToken:  "stored-access",
		RefreshToken: "stored-refresh",
		ExpiresAt:    testNow.Add(expiresIn),
		Version:      3,
	}
}

func TestTokenService_GetValidToken_NoRefreshAboveMargin(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Find(ctx, userID, entity.ProviderWhoop).
		Return(storedToken(userID, 5*time.Minute+time.Second), nil).Once()

	token, ok := fx.service.GetValidToken(ctx, userID, entity.ProviderWhoop)

	assert.True(t, ok)
	assert.Equal(t, "stored-access", token)
}

func TestTokenService_GetValidToken_RefreshesInsideMargin(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()
	stale := storedToken(userID, 5*time.Minute-time.Second)

	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(stale, nil).Times(2)
	fx.oauth.EXPECT().Refresh(mock.Anything, "stored-refresh").Return(&entity.TokenGrant{
		AccessToken:  "fresh-access",
		RefreshToken: "fresh-refresh",
		ExpiresIn:    time.Hour,
	}, nil).Once()

	var written *entity.OAuthToken
	fx.tokenRepo.EXPECT().UpdateIfVersion(mock.Anything, mock.AnythingOfType("*entity.OAuthToken"), int64(3)).
		Run(func(_ context.Context, token *entity.OAuthToken, _ int64) { written = token }).
		Return(true, nil).Once()

	token, ok := fx.service.GetValidToken(ctx, userID, entity.ProviderWhoop)

	assert.True(t, ok)
	assert.Equal(t, "fresh-access", token)
	require.NotNil(t, written)
	assert.Equal(t, "fresh-refresh", written.RefreshToken)
	assert.Equal(t, testNow.Add(time.Hour), written.ExpiresAt)
}

func TestTokenService_GetValidToken_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	fx := createTestTokenService(t)
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(storedToken(userID, 0), nil).Times(2)
	fx.oauth.EXPECT().Refresh(mock.Anything, "stored-refresh").
		Return(&entity.TokenGrant{AccessToken: "fresh-access", ExpiresIn: time.Hour}, nil).Once()
	fx.tokenRepo.EXPECT().UpdateIfVersion(mock.Anything, mock.MatchedBy(func(token *entity.OAuthToken) bool {
		return token.RefreshToken == "stored-refresh"
	}), int64(3)).Return(true, nil).Once()

	_, ok := fx.service.GetValidToken(context.Background(), userID, entity.ProviderWhoop)

	assert.True(t, ok)
}

func TestTokenService_GetValidToken_NoStoredToken(t *testing.T) {
	fx := createTestTokenService(t)
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(nil, repository.ErrTokenNotFound).Once()

	token, ok := fx.service.GetValidToken(context.Background(), userID, entity.ProviderWhoop)

	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestTokenService_GetValidToken_RefreshFailureReturnsNoToken(t *testing.T) {
	fx := createTestTokenService(t)
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(storedToken(userID, time.Minute), nil).Times(2)
	fx.oauth.EXPECT().Refresh(mock.Anything, "stored-refresh").Return(nil, errors.New("invalid_grant")).Once()

	token, ok := fx.service.GetValidToken(context.Background(), userID, entity.ProviderWhoop)

	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestTokenService_GetValidToken_LostRaceUsesWinner(t *testing.T) {
	fx := createTestTokenService(t)
	userID := uuid.New()
	winner := storedToken(userID, time.Hour)
	winner.AccessToken = "winner-access"

	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(storedToken(userID, time.Minute), nil).Times(2)
	fx.oauth.EXPECT().Refresh(mock.Anything, "stored-refresh").
		Return(&entity.TokenGrant{AccessToken: "loser-access", RefreshToken: "loser-refresh", ExpiresIn: time.Hour}, nil).Once()
	fx.tokenRepo.EXPECT().UpdateIfVersion(mock.Anything, mock.Anything, int64(3)).Return(false, nil).Once()
	fx.tokenRepo.EXPECT().Find(mock.Anything, userID, entity.ProviderWhoop).Return(winner, nil).Once()

	token, ok := fx.service.GetValidToken(context.Background(), userID, entity.ProviderWhoop)

	assert.True(t, ok)
	assert.Equal(t, "winner-access", token)
}

// countingOAuth refreshes against a fake provider and counts calls.
type countingOAuth struct {
	calls   atomic.Int32
	release chan struct{}
}

func (o *countingOAuth) Provider() entity.Provider { return entity.ProviderWithings }

func (o *countingOAuth) AuthorizationURL(string) string { return "" }

func (o *countingOAuth) Exchange(context.Context, string) (*entity.TokenGrant, error) {
	return nil, errors.New("not used")
}

func (o *countingOAuth) Refresh(ctx context.Context, _ string) (*entity.TokenGrant, error) {
	o.calls.Add(1)
	select {
	case <-o.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &entity.TokenGrant{AccessToken: "shared-access", RefreshToken: "shared-refresh", ExpiresIn: 3 * time.Hour}, nil
}

func TestTokenService_GetValidToken_ConcurrentCallersShareOneRefresh(t *testing.T) {
	userID := uuid.New()
	repo := newFakeTokenRepo(&entity.OAuthToken{
		UserID:       userID,
		Provider:     entity.ProviderWithings,
		AccessToken:  "expired",
		RefreshToken: "rt",
		ExpiresAt:    testNow.Add(-time.Hour),
		Version:      1,
	})
	oauth := &countingOAuth{release: make(chan struct{})}
	svc := newTokenService(repo, []service.ProviderOAuth{oauth}, fixedClock(testNow), newDiscardLogger())

	const callers = 8
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i], _ = svc.GetValidToken(context.Background(), userID, entity.ProviderWithings)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(oauth.release)
	wg.Wait()

	assert.Equal(t, int32(1), oauth.calls.Load())
	assert.Equal(t, 1, repo.writes)
	for _, token := range tokens {
		assert.Equal(t, "shared-access", token)
	}
}

func TestTokenService_StoreTokens(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(token *entity.OAuthToken) bool {
		return token.UserID == userID &&
			token.AccessToken == "at" &&
			token.ProviderUserID == "363" &&
			token.ExpiresAt.Equal(testNow.Add(3*time.Hour))
	})).Return(nil).Once()

	err := fx.service.StoreTokens(ctx, userID, entity.ProviderWhoop, &entity.TokenGrant{
		AccessToken:    "at",
		RefreshToken:   "rt",
		ExpiresIn:      3 * time.Hour,
		ProviderUserID: "363",
	})

	require.NoError(t, err)
}

func TestTokenService_StoreTokens_RejectsEmptyGrant(t *testing.T) {
	fx := createTestTokenService(t)

	err := fx.service.StoreTokens(context.Background(), uuid.New(), entity.ProviderWhoop, &entity.TokenGrant{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestTokenService_RemoveTokens_NotConnected(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().Delete(ctx, userID, entity.ProviderWhoop).Return(repository.ErrTokenNotFound).Once()

	err := fx.service.RemoveTokens(ctx, userID, entity.ProviderWhoop)

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}
