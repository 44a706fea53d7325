package handler

import (
	"net/http"
	"strconv"

	"cortex/internal/delivery/http/response"
	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyncHandler triggers manual syncs for the authenticated user.
type SyncHandler struct {
	uc usecase.SyncUsecase
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(uc usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// SyncAll syncs every connected provider. Per-provider failures are reported in the body.
func (h *SyncHandler) SyncAll(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	results, err := h.uc.SyncUser(c.Request().Context(), userID, boolQuery(c, "initial"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "")
}

// SyncProvider syncs a single provider.
func (h *SyncHandler) SyncProvider(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	result := h.uc.Sync(c.Request().Context(), userID, provider, boolQuery(c, "initial"))

	return response.Success(c, http.StatusOK, result, "")
}

// Logs lists recent sync attempts, newest first.
func (h *SyncHandler) Logs(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer"))
		}
	}

	entries, err := h.uc.ListLogs(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
