package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"cortex/internal/infra/metrics"
)

const (
	poolSampleInterval = 5 * time.Second

	// Waits above this per interval usually mean batch syncs are starving API requests.
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// poolMonitor samples sql.DBStats and reports the change since the previous sample.
type poolMonitor struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	prev   sql.DBStats
}

func newPoolMonitor(stats func() sql.DBStats, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{stats: stats, logger: logger, prev: stats()}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

// sample publishes the current pool state and returns the wait accrued since the last call.
func (m *poolMonitor) sample(ctx context.Context) time.Duration {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	metrics.RecordDBPool(cur.InUse, cur.Idle, waited)

	if waits <= 0 {
		return 0
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)

	return waited
}
