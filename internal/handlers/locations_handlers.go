package handlers

import (
	"net/http"

	"elocalpass/internal/common"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
)

// LocationHandlers handles location-related HTTP requests
type LocationHandlers struct {
	locationService services.LocationService
}

// NewLocationHandlers creates a new location handlers instance
func NewLocationHandlers(locationService services.LocationService) *LocationHandlers {
	return &LocationHandlers{locationService: locationService}
}

// CreateLocation handles creating a location under a distributor
//
//	@Summary	Create location
//	@Description	The location starts active only when its distributor is active.
//	@Tags		admin
//	@Param		body	body		services.LocationInput	true	"Location"
//	@Success	201		{object}	models.Location
//	@Failure	400		{object}	common.ErrorResponse
//	@Failure	404		{object}	common.ErrorResponse
//	@Failure	409		{object}	common.ErrorResponse
//	@Router		/api/admin/locations [post]
func (h *LocationHandlers) CreateLocation(c echo.Context) error {
	var req services.LocationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	location, err := h.locationService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, location)
}

// UpdateLocation handles updating location details
func (h *LocationHandlers) UpdateLocation(c echo.Context) error {
	locationID, err := common.ValidateUUID(c.Param("id"), "Location ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req services.AccountInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	location, err := h.locationService.Update(c.Request().Context(), locationID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, location)
}

func (h *LocationHandlers) MySellers(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	sellers, err := h.locationService.SellersForUser(ctx, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sellers)
}
