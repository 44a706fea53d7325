// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"cortex/internal/delivery/http/middleware"
	"cortex/internal/delivery/http/response"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("missing user in request context"))
	}

	return userID, nil
}

func providerParam(c echo.Context) (entity.Provider, error) {
	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrUnsupportedProvider.WithDetails(err.Error()))
	}

	return provider, nil
}

func boolQuery(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))

	return err == nil && v
}

// windowQuery reads ?start&end as RFC 3339 timestamps or bare dates.
// A bare end date covers that whole day.
func windowQuery(c echo.Context) (entity.SyncWindow, error) {
	rawStart, rawEnd := c.QueryParam("start"), c.QueryParam("end")
	if rawStart == "" || rawEnd == "" {
		return entity.SyncWindow{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("start and end query parameters are required"))
	}

	start, _, err := parseInstant(rawStart)
	if err != nil {
		return entity.SyncWindow{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid start: " + rawStart))
	}
	end, dateOnly, err := parseInstant(rawEnd)
	if err != nil {
		return entity.SyncWindow{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid end: " + rawEnd))
	}
	if dateOnly {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return entity.SyncWindow{Start: start, End: end}, nil
}

func parseInstant(value string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(dateLayout, value); err == nil {
		return t, true, nil
	}

	return time.Time{}, false, errors.WithStack(err)
}
