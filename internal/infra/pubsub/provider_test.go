package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cortex/config"
	"cortex/internal/domain/constants"
	"cortex/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "unconfigured inline mode",
			cfg:  &config.Config{Sync: &config.SyncConfig{BatchMode: constants.BatchModeInline}},
			check: func(t *testing.T, p service.EventPublisher) {
				t.Helper()
				assert.IsType(t, &disabledPublisher{}, p)
			},
		},
		{
			name:    "unconfigured pubsub mode",
			cfg:     &config.Config{Sync: &config.SyncConfig{BatchMode: constants.BatchModePubSub}},
			wantErr: "requires pubsub.provider",
		},
		{
			name: "local",
			cfg: &config.Config{PubSub: &config.PubSubConfig{
				Provider:      constants.PubSubProviderLocal,
				LocalEndpoint: "http://localhost:8081/push",
			}},
			check: func(t *testing.T, p service.EventPublisher) {
				t.Helper()
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			wantErr: "localEndpoint",
		},
		{
			name:    "google without topic",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
			wantErr: "topicId",
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPublisher(context.Background(), tt.cfg, logger)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestDisabledPublisher_RefusesToPublish(t *testing.T) {
	p := &disabledPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := p.PublishSyncRequested(context.Background(), &service.SyncRequestedEvent{UserID: "u", Provider: "whoop"})

	assert.True(t, errors.Is(err, ErrPublishingDisabled))
	assert.NoError(t, p.Close())
}
