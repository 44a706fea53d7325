package impl

import (
	"context"
	"log/slog"

	"cortex/config"
	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/repository"
	"cortex/internal/domain/service"
	"cortex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	oauth      map[entity.Provider]service.ProviderOAuth
	configured map[entity.Provider]bool
	states     service.OAuthStateStore
	tokens     usecase.TokenUsecase
	tokenRepo  repository.TokenRepository
	logger     *slog.Logger
}

// ConnectionServiceParams holds dependencies for the connection service, injected by Fx
type ConnectionServiceParams struct {
	fx.In

	Config    *config.Config
	OAuth     []service.ProviderOAuth `group:"provider_oauth"`
	States    service.OAuthStateStore
	Tokens    usecase.TokenUsecase
	TokenRepo repository.TokenRepository
	Logger    *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	configured := map[entity.Provider]bool{
		entity.ProviderWhoop:    isConfigured(params.Config.Whoop),
		entity.ProviderWithings: isConfigured(params.Config.Withings),
	}

	return newConnectionService(params.OAuth, configured, params.States, params.Tokens, params.TokenRepo, params.Logger)
}

func isConfigured(cfg *config.ProviderConfig) bool {
	return cfg != nil && cfg.ClientID != "" && cfg.ClientSecret != ""
}

func newConnectionService(
	providers []service.ProviderOAuth,
	configured map[entity.Provider]bool,
	states service.OAuthStateStore,
	tokens usecase.TokenUsecase,
	tokenRepo repository.TokenRepository,
	logger *slog.Logger,
) *connectionService {
	oauth := make(map[entity.Provider]service.ProviderOAuth, len(providers))
	for _, p := range providers {
		oauth[p.Provider()] = p
	}

	return &connectionService{
		oauth:      oauth,
		configured: configured,
		states:     states,
		tokens:     tokens,
		tokenRepo:  tokenRepo,
		logger:     logger,
	}
}

func (srv *connectionService) provider(provider entity.Provider) (service.ProviderOAuth, error) {
	oauth, ok := srv.oauth[provider]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedProvider.WithDetails(provider.String()))
	}
	if !srv.configured[provider] {
		return nil, errors.WithStack(domainerrors.ErrProviderNotConfigured.WithDetails(provider.String()))
	}

	return oauth, nil
}

func (srv *connectionService) AuthorizationURL(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, error) {
	oauth, err := srv.provider(provider)
	if err != nil {
		return "", err
	}

	state, err := srv.states.Issue(userID, provider)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).DebugContext(ctx, "Issued OAuth state",
		slog.String("userID", userID.String()),
		slog.String("provider", provider.String()),
	)

	return oauth.AuthorizationURL(state), nil
}

// HandleCallback must exchange the code right away: Withings codes expire within seconds.
func (srv *connectionService) HandleCallback(ctx context.Context, provider entity.Provider, code, state string) (uuid.UUID, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("provider", provider.String()))

	oauth, err := srv.provider(provider)
	if err != nil {
		return uuid.Nil, err
	}

	userID, stateProvider, ok := srv.states.Consume(state)
	if !ok || stateProvider != provider {
		logger.WarnContext(ctx, "Rejected OAuth callback with invalid state")

		return uuid.Nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	if code == "" {
		return uuid.Nil, errors.WithStack(domainerrors.ErrOAuthCodeInvalid)
	}

	grant, err := oauth.Exchange(ctx, code)
	if err != nil {
		logger.ErrorContext(ctx, "OAuth code exchange failed", slog.Any("error", err))

		return uuid.Nil, errors.WithStack(domainerrors.ErrOAuthExchangeFailed.WithDetails(err.Error()))
	}

	if err := srv.tokens.StoreTokens(ctx, userID, provider, grant); err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func (srv *connectionService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error) {
	tokens, err := srv.tokenRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	connections := make([]*entity.Connection, 0, len(tokens))
	for _, token := range tokens {
		connections = append(connections, &entity.Connection{
			Provider:  token.Provider,
			CreatedAt: token.CreatedAt,
			UpdatedAt: token.UpdatedAt,
		})
	}

	return connections, nil
}

func (srv *connectionService) Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	if err := srv.tokens.RemoveTokens(ctx, userID, provider); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).InfoContext(ctx, "Provider disconnected",
		slog.String("userID", userID.String()),
		slog.String("provider", provider.String()),
	)

	return nil
}
