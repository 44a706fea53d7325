// Package middleware holds echo middleware shared by the API server and the sync worker.
package middleware

import (
	"log/slog"

	deliverycontext "cortex/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Longer client-supplied IDs are replaced so they cannot bloat every log line.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns each request an ID and a logger that carries it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses X-Request-Id when present and stores the ID and logger on both contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		deliverycontext.BindRequest(c, requestID, m.logger)

		return next(c)
	}
}
