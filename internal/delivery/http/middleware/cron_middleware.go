package middleware

import (
	"cortex/internal/delivery/http/response"
	"cortex/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CronMiddleware guards scheduler endpoints with the shared cron secret.
type CronMiddleware struct {
	verifier service.SecretVerifier
}

// NewCronMiddleware is the constructor for CronMiddleware.
func NewCronMiddleware(verifier service.SecretVerifier) *CronMiddleware {
	return &CronMiddleware{verifier: verifier}
}

// RequireSecret accepts only `Authorization: Bearer <cron secret>`.
func (m *CronMiddleware) RequireSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret, ok := bearerToken(c)
		if !ok || !m.verifier.Verify(secret) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		return next(c)
	}
}
