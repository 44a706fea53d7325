// Package whoop talks to the WHOOP developer API.
package whoop

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cortex/config"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"
	"cortex/internal/infra/provider/transport"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	pageLimit = "25"

	cyclePath    = "/cycle"
	recoveryPath = "/recovery"
	sleepPath    = "/activity/sleep"
	workoutPath  = "/activity/workout"
)

// collection is the paginated envelope shared by every WHOOP list endpoint.
type collection struct {
	Records   []json.RawMessage `json:"records"`
	NextToken *string           `json:"next_token"`
}

// Client implements service.WhoopAPI.
type Client struct {
	baseURL string
	http    *transport.Client
	logger  *slog.Logger
}

// NewClient wires the WHOOP client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.WhoopAPI {
	return New(cfg.Whoop.APIBaseURL, transport.NewFromConfig(entity.ProviderWhoop.String(), cfg.Whoop, logger), logger)
}

// New builds a Client against baseURL.
func New(baseURL string, httpClient *transport.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.With(slog.String("provider", entity.ProviderWhoop.String())),
	}
}

func (c *Client) FetchCycles(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*service.WhoopCycleRecord, error) {
	return fetchAll(ctx, c, cyclePath, accessToken, window, func(r *service.WhoopCycleRecord, raw []byte) {
		r.Raw = raw
	})
}

func (c *Client) FetchRecoveries(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*service.WhoopRecoveryRecord, error) {
	return fetchAll(ctx, c, recoveryPath, accessToken, window, func(r *service.WhoopRecoveryRecord, raw []byte) {
		r.Raw = raw
	})
}

func (c *Client) FetchSleeps(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*service.WhoopSleepRecord, error) {
	return fetchAll(ctx, c, sleepPath, accessToken, window, func(r *service.WhoopSleepRecord, raw []byte) {
		r.Raw = raw
	})
}

func (c *Client) FetchWorkouts(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*service.WhoopWorkoutRecord, error) {
	return fetchAll(ctx, c, workoutPath, accessToken, window, func(r *service.WhoopWorkoutRecord, raw []byte) {
		r.Raw = raw
	})
}

// fetchAll follows next_token until the collection is exhausted.
func fetchAll[T any](
	ctx context.Context,
	c *Client,
	path, accessToken string,
	window entity.SyncWindow,
	attachRaw func(*T, []byte),
) ([]*T, error) {
	var (
		records   []*T
		nextToken string
		pages     int
	)

	for {
		page, err := c.fetchPage(ctx, path, accessToken, window, nextToken)
		if err != nil {
			return nil, errors.Wrapf(err, "whoop %s page %d", path, pages+1)
		}
		pages++

		for _, raw := range page.Records {
			record := new(T)
			if err := json.Unmarshal(raw, record); err != nil {
				return nil, errors.Wrapf(err, "decode whoop %s record", path)
			}
			attachRaw(record, raw)
			records = append(records, record)
		}

		if page.NextToken == nil || *page.NextToken == "" {
			break
		}
		nextToken = *page.NextToken
	}

	c.logger.DebugContext(ctx, "Fetched WHOOP collection",
		slog.String("path", path),
		slog.Int("pages", pages),
		slog.Int("records", len(records)),
	)

	return records, nil
}

func (c *Client) fetchPage(ctx context.Context, path, accessToken string, window entity.SyncWindow, nextToken string) (*collection, error) {
	query := url.Values{}
	query.Set("start", window.Start.UTC().Format(time.RFC3339))
	query.Set("end", window.End.UTC().Format(time.RFC3339))
	query.Set("limit", pageLimit)
	if nextToken != "" {
		query.Set("nextToken", nextToken)
	}
	endpoint := c.baseURL + path + "?" + query.Encode()

	resp, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("Accept", "application/json")

		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var page collection
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, errors.Wrap(err, "decode whoop collection")
	}

	return &page, nil
}
