package middleware

import (
	"net/http"
	"strconv"
	"time"

	"elocalpass/internal/caching"
	"elocalpass/internal/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RateLimit caps requests per client IP under the given scope. A nil limiter or
// a non-positive limit disables it; limiter errors let the request through.
func RateLimit(limiter caching.RateLimiter, scope string, limit int, window time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil || limit <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			limited, err := limiter.IsRateLimited(ctx, scope+":"+c.RealIP(), limit, window)
			if err != nil {
				logging.FromContext(ctx, logger).Warn("rate limiter unavailable", zap.Error(err))
				return next(c)
			}
			if limited {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
