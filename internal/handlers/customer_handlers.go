package handlers

import (
	"errors"
	"net/http"
	"strings"

	"elocalpass/internal/i18n"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers serves the public customer endpoints.
type CustomerHandlers struct {
	customerAccess services.CustomerAccessService
}

func NewCustomerHandlers(customerAccess services.CustomerAccessService) *CustomerHandlers {
	return &CustomerHandlers{customerAccess: customerAccess}
}

// Access redeems a customer access token.
//
//	@Summary	Redeem customer access token
//	@Tags		customer
//	@Param		token				query		string	true	"Access token"
//	@Param		Accept-Language		header		string	false	"Preferred language"
//	@Success	200					{object}	services.CustomerAccess
//	@Failure	400					{object}	common.ErrorResponse
//	@Failure	401					{object}	common.ErrorResponse
//	@Failure	404					{object}	common.ErrorResponse
//	@Failure	429					{object}	common.ErrorResponse
//	@Router		/api/customer/access [get]
func (h *CustomerHandlers) Access(c echo.Context) error {
	token := c.QueryParam("token")
	if strings.TrimSpace(token) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Access token is required")
	}

	access, err := h.customerAccess.Redeem(c.Request().Context(), token)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Invalid or expired access token")
	case errors.Is(err, services.ErrExpired):
		return echo.NewHTTPError(http.StatusUnauthorized, "Access token has expired")
	case err != nil:
		return err
	}

	access.Language = i18n.Negotiate(c.Request().Header.Get("Accept-Language"))
	return c.JSON(http.StatusOK, access)
}
