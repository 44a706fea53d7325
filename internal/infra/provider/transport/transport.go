// Package transport is the HTTP layer shared by the provider clients. It paces requests,
// retries HTTP 429 responses a bounded number of times and guards each provider with a
// circuit breaker.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cortex/config"
	"cortex/internal/infra/metrics"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrRateLimitExhausted is returned when a provider keeps answering 429 past the retry budget.
var ErrRateLimitExhausted = errors.New("rate limit retries exhausted")

const maxErrorBodyBytes = 2048

// APIError is a non-2xx, non-429 provider response.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %d %s", e.Provider, e.StatusCode, e.Body)
}

// Response is a fully read provider response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// RequestFactory builds a fresh request for every attempt so retries replay it unchanged.
type RequestFactory func(ctx context.Context) (*http.Request, error)

// Options configures a Client.
type Options struct {
	Provider string

	// RequestTimeout bounds a single round trip. Zero means no per-request timeout.
	RequestTimeout time.Duration

	// PageInterval is the minimum spacing between requests to this provider.
	PageInterval time.Duration

	// MaxRetries is the number of retries after the first 429.
	MaxRetries int

	// DefaultRetryWait applies when a 429 carries no usable Retry-After header.
	DefaultRetryWait time.Duration

	Logger *slog.Logger

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client

	// Sleep overrides the cancellable wait between 429 retries.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Client executes provider requests.
type Client struct {
	provider    string
	httpClient  *http.Client
	pacer       *rate.Limiter
	maxRetries  int
	defaultWait time.Duration
	breaker     *gobreaker.CircuitBreaker[*Response]
	logger      *slog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// New builds a Client for one provider.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.RequestTimeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if opts.PageInterval > 0 {
		limit = rate.Every(opts.PageInterval)
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	c := &Client{
		provider:    opts.Provider,
		httpClient:  httpClient,
		pacer:       rate.NewLimiter(limit, 1),
		maxRetries:  max(opts.MaxRetries, 0),
		defaultWait: opts.DefaultRetryWait,
		logger:      logger.With(slog.String("provider", opts.Provider)),
		sleep:       sleep,
	}
	c.breaker = newBreaker(opts.Provider, c.logger)

	return c
}

// NewFromConfig builds a Client from a provider's configuration block.
func NewFromConfig(provider string, cfg *config.ProviderConfig, logger *slog.Logger) *Client {
	return New(Options{
		Provider:         provider,
		RequestTimeout:   cfg.RequestTimeout,
		PageInterval:     cfg.PageInterval,
		MaxRetries:       cfg.MaxRetries,
		DefaultRetryWait: cfg.RateLimitWait,
		Logger:           logger,
	})
}

// Do runs the request produced by newRequest, retrying on 429 until the budget is spent.
func (c *Client) Do(ctx context.Context, newRequest RequestFactory) (*Response, error) {
	resp, err := c.breaker.Execute(func() (*Response, error) {
		return c.doWithRetry(ctx, newRequest)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrapf(err, "%s circuit breaker", c.provider)
		}

		return nil, err
	}

	return resp, nil
}

func (c *Client) doWithRetry(ctx context.Context, newRequest RequestFactory) (*Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.pacer.Wait(ctx); err != nil {
			return nil, errors.WithStack(err)
		}

		resp, err := c.roundTrip(ctx, newRequest)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return nil, errors.WithStack(&APIError{
					Provider:   c.provider,
					StatusCode: resp.StatusCode,
					Body:       truncate(string(resp.Body), maxErrorBodyBytes),
				})
			}

			return resp, nil
		}

		metrics.ProviderRateLimited.WithLabelValues(c.provider).Inc()

		if attempt >= c.maxRetries {
			return nil, errors.Wrapf(ErrRateLimitExhausted, "%s: still limited after %d retries", c.provider, c.maxRetries)
		}

		wait := c.retryWait(resp.Header)
		c.logger.WarnContext(ctx, "Provider rate limited, backing off",
			slog.Duration("wait", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", c.maxRetries),
		)

		if err := c.sleep(ctx, wait); err != nil {
			return nil, errors.WithStack(err)
		}
	}
}

func (c *Client) roundTrip(ctx context.Context, newRequest RequestFactory) (*Response, error) {
	req, err := newRequest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request", c.provider)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	metrics.RecordProviderRequest(c.provider, httpResp.StatusCode, time.Since(start))
	if err != nil {
		return nil, errors.Wrapf(err, "%s read body", c.provider)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// retryWait honours Retry-After given in seconds or as an HTTP date.
func (c *Client) retryWait(header http.Header) time.Duration {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return c.defaultWait
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}

		return 0
	}

	return c.defaultWait
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
