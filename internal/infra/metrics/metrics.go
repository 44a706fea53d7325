// Package metrics exposes Prometheus instrumentation for provider calls and sync runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_provider_requests_total",
			Help: "Upstream provider HTTP requests by status code",
		},
		[]string{"provider", "status"},
	)

	ProviderRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_provider_rate_limited_total",
			Help: "HTTP 429 responses received from a provider",
		},
		[]string{"provider"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cortex_provider_request_duration_seconds",
			Help:    "Latency of upstream provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cortex_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_sync_runs_total",
			Help: "Sync attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	SyncRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_sync_records_total",
			Help: "Records upserted by successful syncs",
		},
		[]string{"provider"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cortex_sync_duration_seconds",
			Help:    "Duration of a single (user, provider) sync",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"provider"},
	)

	DBPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cortex_db_pool_connections",
			Help: "Postgres pool connections by state (in_use, idle)",
		},
		[]string{"state"},
	)

	DBPoolWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cortex_db_pool_wait_seconds_total",
			Help: "Time spent waiting for a free Postgres connection",
		},
	)

	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cortex_token_refreshes_total",
			Help: "Access token refresh attempts by outcome",
		},
		[]string{"provider", "outcome"},
	)
)

// RecordProviderRequest tracks one upstream round trip.
func RecordProviderRequest(provider string, statusCode int, duration time.Duration) {
	ProviderRequests.WithLabelValues(provider, strconv.Itoa(statusCode)).Inc()
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordSync tracks the terminal outcome of one sync attempt.
func RecordSync(provider string, duration time.Duration, records int, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}

	SyncRuns.WithLabelValues(provider, outcome).Inc()
	SyncDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if success {
		SyncRecords.WithLabelValues(provider).Add(float64(records))
	}
}

// RecordTokenRefresh tracks a refresh attempt.
func RecordTokenRefresh(provider string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}

	TokenRefreshes.WithLabelValues(provider, outcome).Inc()
}

// RecordDBPool publishes a pool snapshot and the wait time accrued since the previous one.
func RecordDBPool(inUse, idle int, waitDelta time.Duration) {
	DBPoolConnections.WithLabelValues("in_use").Set(float64(inUse))
	DBPoolConnections.WithLabelValues("idle").Set(float64(idle))
	if waitDelta > 0 {
		DBPoolWaitSeconds.Add(waitDelta.Seconds())
	}
}
