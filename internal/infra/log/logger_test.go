package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"cortex/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONCarriesServiceAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "cortex"
	cfg.Env.Env = "staging"
	cfg.Env.Log.Level = "info"

	buf := &bytes.Buffer{}
	logger, err := build(buf, cfg)
	require.NoError(t, err)

	logger.Info("Sync completed")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"service":"cortex"`)
	assert.Contains(t, out, `"env":"staging"`)
	assert.Contains(t, out, "Sync completed")
	assert.NotContains(t, out, "hidden")
}
