// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"
	"cortex/internal/infra/metrics"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// refreshTimeout bounds a shared refresh so one slow caller cannot stall the others.
const refreshTimeout = 30 * time.Second

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	tokenRepo repository.TokenRepository
	oauth     map[entity.Provider]service.ProviderOAuth
	refreshes singleflight.Group
	now       func() time.Time
	logger    *slog.Logger
}

// TokenServiceParams holds dependencies for the token service, injected by Fx
type TokenServiceParams struct {
	fx.In

	TokenRepo repository.TokenRepository
	OAuth     []service.ProviderOAuth `group:"provider_oauth"`
	Logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return newTokenService(params.TokenRepo, params.OAuth, time.Now, params.Logger)
}

func newTokenService(
	tokenRepo repository.TokenRepository,
	providers []service.ProviderOAuth,
	now func() time.Time,
	logger *slog.Logger,
) *tokenService {
	oauth := make(map[entity.Provider]service.ProviderOAuth, len(providers))
	for _, p := range providers {
		oauth[p.Provider()] = p
	}

	return &tokenService{
		tokenRepo: tokenRepo,
		oauth:     oauth,
		now:       now,
		logger:    logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetValidToken returns the stored token when it is still usable, otherwise refreshes it.
// Concurrent callers for the same (user, provider) share a single refresh.
func (srv *tokenService) GetValidToken(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, bool) {
	logger := srv.log(ctx).With(slog.String("userID", userID.String()), slog.String("provider", provider.String()))

	token, err := srv.tokenRepo.Find(ctx, userID, provider)
	if err != nil {
		if !errors.Is(err, repository.ErrTokenNotFound) {
			logger.ErrorContext(ctx, "Failed to load stored token", slog.Any("error", err))
		}

		return "", false
	}

	if token.IsUsable(srv.now()) {
		return token.AccessToken, true
	}

	key := userID.String() + ":" + provider.String()
	result, err, _ := srv.refreshes.Do(key, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		return srv.refresh(refreshCtx, logger, userID, provider)
	})
	if err != nil {
		logger.WarnContext(ctx, "Token refresh failed", slog.Any("error", err))

		return "", false
	}

	accessToken, _ := result.(string)

	return accessToken, accessToken != ""
}

// refresh re-reads the row inside the flight, since another process may have refreshed it
// already, then writes the new pair only if the version is unchanged.
func (srv *tokenService) refresh(ctx context.Context, logger *slog.Logger, userID uuid.UUID, provider entity.Provider) (string, error) {
	current, err := srv.tokenRepo.Find(ctx, userID, provider)
	if err != nil {
		return "", errors.Wrap(err, "reload token")
	}
	if current.IsUsable(srv.now()) {
		return current.AccessToken, nil
	}

	oauth, ok := srv.oauth[provider]
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrProviderNotConfigured, "no oauth client for %s", provider)
	}

	grant, err := oauth.Refresh(ctx, current.RefreshToken)
	if err != nil {
		metrics.RecordTokenRefresh(provider.String(), false)

		return "", err
	}
	metrics.RecordTokenRefresh(provider.String(), true)

	updated := *current
	updated.AccessToken = grant.AccessToken
	if grant.RefreshToken != "" {
		updated.RefreshToken = grant.RefreshToken
	}
	updated.ExpiresAt = srv.now().Add(grant.ExpiresIn)

	written, err := srv.tokenRepo.UpdateIfVersion(ctx, &updated, current.Version)
	if err != nil {
		// The provider already rotated the pair; returning it lets this sync proceed.
		logger.ErrorContext(ctx, "Failed to persist refreshed token", slog.Any("error", err))

		return updated.AccessToken, nil
	}

	if !written {
		winner, err := srv.tokenRepo.Find(ctx, userID, provider)
		if err == nil && winner.IsUsable(srv.now()) {
			logger.InfoContext(ctx, "Lost token refresh race, using stored token")

			return winner.AccessToken, nil
		}
	}

	logger.InfoContext(ctx, "Token refreshed", slog.Time("expiresAt", updated.ExpiresAt))

	return updated.AccessToken, nil
}

func (srv *tokenService) StoreTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider, grant *entity.TokenGrant) error {
	if grant == nil || grant.AccessToken == "" {
		return errors.Wrap(domainerrors.ErrOAuthExchangeFailed, "provider returned no access token")
	}

	token := &entity.OAuthToken{
		UserID:         userID,
		Provider:       provider,
		AccessToken:    grant.AccessToken,
		RefreshToken:   grant.RefreshToken,
		TokenType:      grant.TokenType,
		Scopes:         grant.Scopes,
		ExpiresAt:      srv.now().Add(grant.ExpiresIn),
		ProviderUserID: grant.ProviderUserID,
	}

	if err := srv.tokenRepo.Upsert(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store tokens")
	}

	srv.log(ctx).InfoContext(ctx, "Provider connected",
		slog.String("userID", userID.String()),
		slog.String("provider", provider.String()),
	)

	return nil
}

func (srv *tokenService) RemoveTokens(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	if err := srv.tokenRepo.Delete(ctx, userID, provider); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return errors.WithStack(domainerrors.ErrProviderNotConnected)
		}

		return errors.Wrap(err, "failed to remove tokens")
	}

	return nil
}
