package transport

import (
	"log/slog"
	"net/http"
	"time"

	"cortex/internal/infra/metrics"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
)

// newBreaker opens after 60% of at least 10 requests in a minute fail, then probes again
// after two minutes with up to three requests.
func newBreaker(provider string, logger *slog.Logger) *gobreaker.CircuitBreaker[*Response] {
	name := provider + "-api"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Client errors mean our request or credential is wrong, not that the provider is down.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}

			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < http.StatusInternalServerError
			}

			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state transition",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
