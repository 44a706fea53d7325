// Package withings talks to the Withings public API. Every Withings response wraps its
// payload in a {status, body} envelope where status 0 is success, even on HTTP 200.
package withings

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cortex/config"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"
	"cortex/internal/infra/provider/transport"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// categoryReal excludes user objectives from getmeas results.
const categoryReal = "1"

// StatusError is a non-zero Withings envelope status.
type StatusError struct {
	Action string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("withings %s status %d: %s", e.Action, e.Status, e.Detail)
	}

	return fmt.Sprintf("withings %s status %d", e.Action, e.Status)
}

type envelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Body   json.RawMessage `json:"body"`
}

type measureBody struct {
	MeasureGroups []json.RawMessage `json:"measuregrps"`
	More          int               `json:"more"`
	Offset        int               `json:"offset"`
}

// Client implements service.WithingsAPI.
type Client struct {
	baseURL string
	http    *transport.Client
	logger  *slog.Logger
}

// NewClient wires the Withings client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.WithingsAPI {
	return New(cfg.Withings.APIBaseURL, transport.NewFromConfig(entity.ProviderWithings.String(), cfg.Withings, logger), logger)
}

// New builds a Client against baseURL.
func New(baseURL string, httpClient *transport.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.With(slog.String("provider", entity.ProviderWithings.String())),
	}
}

// FetchMeasureGroups pages through getmeas with the offset cursor while more is set.
func (c *Client) FetchMeasureGroups(ctx context.Context, accessToken string, window entity.SyncWindow) ([]*service.WithingsMeasureGroup, error) {
	var (
		groups []*service.WithingsMeasureGroup
		offset int
		pages  int
	)

	for {
		body, err := c.fetchPage(ctx, accessToken, window, offset)
		if err != nil {
			return nil, errors.Wrapf(err, "withings getmeas page %d", pages+1)
		}
		pages++

		for _, raw := range body.MeasureGroups {
			group := &service.WithingsMeasureGroup{}
			if err := json.Unmarshal(raw, group); err != nil {
				return nil, errors.Wrap(err, "decode withings measure group")
			}
			group.Raw = []byte(raw)
			groups = append(groups, group)
		}

		if body.More != 1 {
			break
		}
		if body.Offset <= offset {
			return nil, errors.Errorf("withings getmeas: offset did not advance past %d", offset)
		}
		offset = body.Offset
	}

	c.logger.DebugContext(ctx, "Fetched Withings measure groups",
		slog.Int("pages", pages),
		slog.Int("groups", len(groups)),
	)

	return groups, nil
}

func (c *Client) fetchPage(ctx context.Context, accessToken string, window entity.SyncWindow, offset int) (*measureBody, error) {
	form := url.Values{}
	form.Set("action", "getmeas")
	form.Set("category", categoryReal)
	form.Set("startdate", strconv.FormatInt(window.Start.Unix(), 10))
	form.Set("enddate", strconv.FormatInt(window.End.Unix(), 10))
	form.Set("offset", strconv.Itoa(offset))
	encoded := form.Encode()

	resp, err := c.http.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/measure", strings.NewReader(encoded))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var body measureBody
	if err := decodeEnvelope(resp.Body, "getmeas", &body); err != nil {
		return nil, err
	}

	return &body, nil
}

// decodeEnvelope checks the status field and decodes body into out.
func decodeEnvelope(data []byte, action string, out any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrapf(err, "decode withings %s envelope", action)
	}
	if env.Status != 0 {
		return errors.WithStack(&StatusError{Action: action, Status: env.Status, Detail: env.Error})
	}
	if len(env.Body) == 0 {
		return errors.Errorf("withings %s: empty body", action)
	}
	if err := json.Unmarshal(env.Body, out); err != nil {
		return errors.Wrapf(err, "decode withings %s body", action)
	}

	return nil
}
