package middleware

import (
	"net/http"

	"elocalpass/internal/common"
	"elocalpass/internal/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Audit records every mutating request in the group together with the acting user.
func Audit(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
				return next(c)
			}

			err := next(c)

			ctx := c.Request().Context()
			fields := []zap.Field{
				zap.String("action", method+" "+c.Path()),
				zap.String("resource_id", c.Param("id")),
				zap.String("user_agent", c.Request().UserAgent()),
			}
			if userID, ok := common.GetUserIDFromContext(ctx); ok {
				fields = append(fields, zap.String("user_id", userID.String()))
			}
			if role, ok := common.GetRoleFromContext(ctx); ok {
				fields = append(fields, zap.String("role", string(role)))
			}
			if err != nil {
				fields = append(fields, zap.NamedError("outcome", err))
			}

			logging.FromContext(ctx, logger).Info("audit", fields...)
			return err
		}
	}
}
