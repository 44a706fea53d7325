package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"cortex/config"
	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/delivery/http/response"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Callback failure reasons passed to the frontend in ?error=.
const (
	reasonInvalidState   = "invalid_state"
	reasonNoCode         = "no_code"
	reasonExchangeFailed = "token_exchange_failed"
	reasonNotConfigured  = "provider_not_configured"
	reasonUnsupported    = "unsupported_provider"
	reasonAccessDenied   = "access_denied"
	reasonCallbackFailed = "callback_failed"
)

// ConnectionHandler serves provider connection management and the OAuth flow.
type ConnectionHandler struct {
	uc          usecase.ConnectionUsecase
	redirectURL string
	logger      *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase, cfg *config.Config, logger *slog.Logger) *ConnectionHandler {
	var redirectURL string
	if cfg.App != nil {
		redirectURL = cfg.App.ConnectRedirectURL
	}

	return &ConnectionHandler{uc: uc, redirectURL: redirectURL, logger: logger}
}

// List returns the providers the user has connected.
func (h *ConnectionHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	connections, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections, "")
}

// Disconnect deletes the stored credential for a provider.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Disconnect(c.Request().Context(), userID, provider); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"provider": provider.String()}, "Provider disconnected")
}

// Authorize starts the OAuth flow. With ?redirect=true the browser is sent straight to the provider.
func (h *ConnectionHandler) Authorize(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	authURL, err := h.uc.AuthorizationURL(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, authURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": authURL}, "")
}

// Callback completes the OAuth flow and always answers with a redirect to the frontend.
func (h *ConnectionHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	provider, err := providerParam(c)
	if err != nil {
		return h.redirect(c, "error", reasonUnsupported)
	}

	if denied := c.QueryParam("error"); denied != "" {
		logger.Warn("OAuth consent was not granted", slog.String("provider", provider.String()), slog.String("reason", denied))

		return h.redirect(c, "error", reasonAccessDenied)
	}

	userID, err := h.uc.HandleCallback(ctx, provider, c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		logger.Warn("OAuth callback failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return h.redirect(c, "error", callbackReason(err))
	}

	logger.Info("Provider connected", slog.String("provider", provider.String()), slog.String("userID", userID.String()))

	return h.redirect(c, "success", provider.String())
}

func (h *ConnectionHandler) redirect(c echo.Context, key, value string) error {
	target, err := url.Parse(h.redirectURL)
	if err != nil {
		return errors.Wrap(err, "invalid connect redirect URL")
	}

	query := target.Query()
	query.Set(key, value)
	target.RawQuery = query.Encode()

	return c.Redirect(http.StatusFound, target.String())
}

func callbackReason(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return reasonCallbackFailed
	}

	switch appErr.ErrorCode() {
	case domainerrors.ErrOAuthStateInvalid.ErrorCode():
		return reasonInvalidState
	case domainerrors.ErrOAuthCodeInvalid.ErrorCode():
		return reasonNoCode
	case domainerrors.ErrOAuthExchangeFailed.ErrorCode():
		return reasonExchangeFailed
	case domainerrors.ErrProviderNotConfigured.ErrorCode():
		return reasonNotConfigured
	case domainerrors.ErrUnsupportedProvider.ErrorCode():
		return reasonUnsupported
	default:
		return reasonCallbackFailed
	}
}
