package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"cortex/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO sync_log", 0
	}, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "Postgres query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM oauth_tokens", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	longSQL := "INSERT INTO whoop_cycles VALUES " + strings.Repeat("('x'),", 1000)
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return longSQL, 1000
	}, nil)

	assert.Contains(t, buf.String(), "(truncated)")
	assert.Less(t, buf.Len(), len(longSQL))
}

func TestGormSlogLogger_QuietOutsideDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, buf.String())
}
