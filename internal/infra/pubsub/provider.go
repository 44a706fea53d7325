package pubsub

import (
	"context"
	"log/slog"

	"cortex/config"
	"cortex/internal/domain/constants"
	"cortex/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPublishingDisabled is returned by the publisher used when no Pub/Sub provider is configured.
var ErrPublishingDisabled = errors.New("pubsub publishing is disabled")

type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishSyncRequested(ctx context.Context, event *service.SyncRequestedEvent) error {
	p.logger.WarnContext(ctx, "[PubSub] Dropping sync request, no provider configured",
		slog.String("user_id", event.UserID),
		slog.String("provider", event.Provider),
	)

	return errors.WithStack(ErrPublishingDisabled)
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher that fans batch syncs out to the sync worker.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub
	if ps == nil || ps.Provider == "" {
		// Inline batch mode only needs a publisher for `syncctl sync-all --dispatch`.
		if cfg.Sync != nil && cfg.Sync.BatchMode == constants.BatchModePubSub {
			return nil, errors.New("sync.batchMode=pubsub requires pubsub.provider")
		}
		logger.Info("PubSub not configured, batch syncs run inline")

		return &disabledPublisher{logger: logger}, nil
	}

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing sync requests to local worker", slog.String("endpoint", ps.LocalEndpoint))

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing sync requests to Google Pub/Sub",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
