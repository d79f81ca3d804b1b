package middleware

import (
	"github.com/labstack/echo/v4"

	"AstroCore/internal/service/ratelimit"
	pkghttp "AstroCore/pkg/http"
)

// RateLimit rejects requests once a client IP runs out of tokens.
func RateLimit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return pkghttp.TooManyRequestsResponse(c)
			}
			return next(c)
		}
	}
}
