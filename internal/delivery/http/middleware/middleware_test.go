package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cortex/internal/domain/errors"
	"cortex/internal/domain/service"
	mockService "cortex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	verifier := mockService.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify("good").Return(&service.IdentityClaims{UserID: userID}, nil).Once()

	c, rec := newTestContext("Bearer good")
	var seen uuid.UUID
	err := NewAuthMiddleware(verifier, newDiscardLogger()).Authenticate(func(c echo.Context) error {
		seen, _ = UserID(c)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(v *mockService.MockIdentityVerifier)
	}{
		{name: "missing header", header: "", setup: func(*mockService.MockIdentityVerifier) {}},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz", setup: func(*mockService.MockIdentityVerifier) {}},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(v *mockService.MockIdentityVerifier) {
				v.EXPECT().Verify("expired").Return(nil, errors.New("token is expired")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockService.NewMockIdentityVerifier(t)
			tt.setup(verifier)
			c, rec := newTestContext(tt.header)

			err := NewAuthMiddleware(verifier, newDiscardLogger()).Authenticate(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestCronMiddleware_RequireSecret(t *testing.T) {
	verifier := mockService.NewMockSecretVerifier(t)
	verifier.EXPECT().Verify("s3cret").Return(true).Once()
	verifier.EXPECT().Verify("wrong").Return(false).Once()
	mw := NewCronMiddleware(verifier)

	c, rec := newTestContext("Bearer s3cret")
	require.NoError(t, mw.RequireSecret(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newTestContext("Bearer wrong")
	require.NoError(t, mw.RequireSecret(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error keeps details",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("height_cm must be at least 50")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":{"code":"VALIDATION_FAILED","details":"height_cm must be at least 50"}`,
		},
		{
			name:       "server-side app error hides details",
			err:        domainerrors.ErrOAuthExchangeFailed.WithDetails("upstream body"),
			wantStatus: http.StatusBadGateway,
			wantBody:   `"error":{"code":"OAUTH_EXCHANGE_FAILED"}`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("")

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
