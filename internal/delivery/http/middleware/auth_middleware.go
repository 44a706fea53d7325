package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "cortex/internal/delivery/context"
	"cortex/internal/delivery/http/response"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID holds the authenticated user's uuid.UUID on echo.Context.
	ContextKeyUserID = "userID"

	bearerPrefix = "Bearer "
)

// AuthMiddleware authenticates identity-provider bearer tokens.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the access token and stores the user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header must carry a Bearer token")
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		// Attach the user to the request-scoped logger for the service layer.
		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), m.logger, slog.String("userID", claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// UserID returns the user stored by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

	return token, token != ""
}
