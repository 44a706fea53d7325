package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cortex/config"
	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/constants"
	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"
	"cortex/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler runs one (user, provider) sync per Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests with an OIDC token; local development posts unsigned
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
	}
}

// HandlePush answers 200 to acknowledge and 503 to have Pub/Sub redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SyncRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse sync event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Carry the dispatcher's request ID so one batch run can be traced across services
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger.With(slog.String("message_id", pushMsg.Message.MessageID)))
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if err := h.processSync(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Sync request failed",
			slog.String("user_id", event.UserID),
			slog.String("provider", event.Provider),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SyncRequestedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes[deliverycontext.LogKeyRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processSync runs the requested sync. Malformed events and missing credentials are
// acknowledged; any other failure is retried.
func (h *PushHandler) processSync(ctx context.Context, event *service.SyncRequestedEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user id %q", event.UserID)
	}

	provider, err := entity.ParseProvider(event.Provider)
	if err != nil {
		return errors.WithStack(err)
	}

	result := h.syncUC.Sync(ctx, userID, provider, event.Initial)
	switch {
	case result.Success:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Sync completed",
			slog.String("user_id", event.UserID),
			slog.String("provider", event.Provider),
			slog.Int("records", result.Records),
		)

		return nil
	case result.Error == entity.NoValidTokenMessage:
		return errors.New(result.Error)
	default:
		return newRetryableError(errors.New(result.Error))
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL configured on the subscription
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
