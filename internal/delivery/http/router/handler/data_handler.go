package handler

import (
	"net/http"

	"cortex/internal/delivery/http/response"
	"cortex/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DataHandler serves stored provider data for dashboards.
type DataHandler struct {
	uc usecase.DataUsecase
}

// NewDataHandler is the constructor for DataHandler, injected by Fx.
func NewDataHandler(uc usecase.DataUsecase) *DataHandler {
	return &DataHandler{uc: uc}
}

func (h *DataHandler) Whoop(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	window, err := windowQuery(c)
	if err != nil {
		return err
	}

	data, err := h.uc.Whoop(c.Request().Context(), userID, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

func (h *DataHandler) Withings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	window, err := windowQuery(c)
	if err != nil {
		return err
	}

	measurements, err := h.uc.Withings(c.Request().Context(), userID, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, measurements, "")
}
