package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"elocalpass/internal/common"
	"elocalpass/internal/logging"
	"elocalpass/internal/models"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BlockedResponse is the 409 body for a rejected activation.
type BlockedResponse struct {
	Error   string           `json:"error"`
	Blocker models.EntityRef `json:"blocker"`
}

// HTTPErrorHandler replaces echo's default so every failure is rendered as
// {"error": "..."}. Unexpected errors are logged and answered with a 500.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logging.FromContext(c.Request().Context(), logger).Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}

func errorResponse(err error) (int, any) {
	var (
		httpErr    *echo.HTTPError
		validation *services.ValidationError
		blocked    *services.BlockedError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, common.ErrorResponse{Error: httpMessage(httpErr)}
	case errors.As(err, &validation):
		return http.StatusBadRequest, common.ErrorResponse{Error: "Validation failed", Fields: validation.Fields}
	case errors.As(err, &blocked):
		return http.StatusConflict, BlockedResponse{Error: blocked.Error(), Blocker: blocked.Blocker}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, common.ErrorResponse{Error: capitalize(err.Error())}
	case errors.Is(err, services.ErrExpired):
		return http.StatusUnauthorized, common.ErrorResponse{Error: "Access token has expired"}
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict, common.ErrorResponse{Error: "Email already in use"}
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, common.ErrorResponse{Error: "Resource was modified concurrently, please retry"}
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrorResponse{Error: "Invalid email or password"}
	case errors.Is(err, services.ErrInactiveAccount):
		return http.StatusForbidden, common.ErrorResponse{Error: "Account is inactive"}
	default:
		return http.StatusInternalServerError, common.ErrorResponse{Error: "Internal server error"}
	}
}

func httpMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	if he.Message == nil {
		return http.StatusText(he.Code)
	}
	return fmt.Sprint(he.Message)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
