package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cortex/config"
	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/domain/constants"
	"cortex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CronHandler runs the scheduled batch sync. The scheduler reads the bare JSON body.
type CronHandler struct {
	uc        usecase.SyncUsecase
	batchMode string
	logger    *slog.Logger
}

// NewCronHandler is the constructor for CronHandler, injected by Fx.
func NewCronHandler(uc usecase.SyncUsecase, cfg *config.Config, logger *slog.Logger) *CronHandler {
	batchMode := constants.BatchModeInline
	if cfg.Sync != nil && cfg.Sync.BatchMode != "" {
		batchMode = cfg.Sync.BatchMode
	}

	return &CronHandler{uc: uc, batchMode: batchMode, logger: logger}
}

// Sync syncs every connected (user, provider) pair, inline or through Pub/Sub.
// The batch outlives the scheduler's connection: a dropped request does not cancel running syncs.
func (h *CronHandler) Sync(c echo.Context) error {
	ctx := context.WithoutCancel(c.Request().Context())
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.batchMode == constants.BatchModePubSub {
		dispatched, err := h.uc.DispatchAll(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		logger.Info("Batch sync dispatched", slog.Int("dispatched", dispatched))

		return c.JSON(http.StatusOK, map[string]int{"dispatched": dispatched})
	}

	result, err := h.uc.SyncAll(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	logger.Info("Batch sync finished", slog.Int("synced", result.Synced))

	return c.JSON(http.StatusOK, result)
}
