package handlers

import (
	"net/http"

	"elocalpass/internal/common"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
)

// SellerHandlers handles seller-related HTTP requests
type SellerHandlers struct {
	sellerService services.SellerService
}

// NewSellerHandlers creates a new seller handlers instance
func NewSellerHandlers(sellerService services.SellerService) *SellerHandlers {
	return &SellerHandlers{sellerService: sellerService}
}

// CreateSeller handles creating a seller together with its configuration
//
//	@Summary	Create seller
//	@Tags		admin
//	@Param		body	body		services.SellerInput	true	"Seller"
//	@Success	201		{object}	models.Seller
//	@Failure	400		{object}	common.ErrorResponse
//	@Failure	409		{object}	common.ErrorResponse
//	@Router		/api/admin/sellers [post]
func (h *SellerHandlers) CreateSeller(c echo.Context) error {
	var req services.SellerInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	seller, err := h.sellerService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, seller)
}

// MyConfig returns the calling seller's configuration.
func (h *SellerHandlers) MyConfig(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	cfg, err := h.sellerService.ConfigForUser(ctx, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
