package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"cortex/internal/delivery/http/middleware"
	"cortex/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context as the auth middleware would leave it.
func newTestContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func TestWindowQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "timestamps",
			query:     "start=2025-01-01T00:00:00Z&end=2025-01-31T12:00:00%2B02:00",
			wantStart: "2025-01-01T00:00:00Z",
			wantEnd:   "2025-01-31T10:00:00Z",
		},
		{
			name:      "bare dates cover the whole end day",
			query:     "start=2025-01-01&end=2025-01-31",
			wantStart: "2025-01-01T00:00:00Z",
			wantEnd:   "2025-01-31T23:59:59.999999999Z",
		},
		{name: "missing end", query: "start=2025-01-01", wantErr: true},
		{name: "garbage", query: "start=yesterday&end=today", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext("GET", "/api/data/whoop?"+tt.query, "", uuid.Nil)

			window, err := windowQuery(c)

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, window.Start.Format("2006-01-02T15:04:05.999999999Z07:00"))
			assert.Equal(t, tt.wantEnd, window.End.UTC().Format("2006-01-02T15:04:05.999999999Z07:00"))
		})
	}
}
