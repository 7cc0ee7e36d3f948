package handlers

import (
	"net/http"
	"strings"

	"elocalpass/internal/common"
	"elocalpass/internal/repositories"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
)

// DistributorHandlers handles distributor-related HTTP requests
type DistributorHandlers struct {
	distributorService services.DistributorService
}

// NewDistributorHandlers creates a new distributor handlers instance
func NewDistributorHandlers(distributorService services.DistributorService) *DistributorHandlers {
	return &DistributorHandlers{distributorService: distributorService}
}

// ListDistributorsRequest represents query parameters for listing distributors
type ListDistributorsRequest struct {
	Sort   string `query:"sort"`
	Status string `query:"status"`
}

func (r *ListDistributorsRequest) filter() (repositories.DistributorListFilter, map[string]string) {
	var (
		filter repositories.DistributorListFilter
		fields = map[string]string{}
	)

	switch strings.ToLower(strings.TrimSpace(r.Sort)) {
	case "", "desc":
		filter.SortDesc = true
	case "asc":
	default:
		fields["sort"] = "must be asc or desc"
	}

	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "", "all":
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		active := false
		filter.Active = &active
	default:
		fields["status"] = "must be all, active or inactive"
	}

	return filter, fields
}

// ListDistributors handles getting the distributor overview
//
//	@Summary	List distributors
//	@Tags		admin
//	@Param		sort	query	string	false	"asc or desc (default desc)"
//	@Param		status	query	string	false	"all, active or inactive"
//	@Success	200		{array}	models.DistributorSummary
//	@Router		/api/admin/distributors [get]
func (h *DistributorHandlers) ListDistributors(c echo.Context) error {
	var req ListDistributorsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	filter, fields := req.filter()
	if len(fields) > 0 {
		return common.SendValidationError(c, fields)
	}

	distributors, err := h.distributorService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, distributors)
}

// GetDistributor handles getting distributor details by ID
//
//	@Summary	Distributor with its locations and sellers
//	@Tags		admin
//	@Param		id	path		string	true	"Distributor ID"
//	@Success	200	{object}	models.DistributorDetails
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/api/admin/distributors/{id} [get]
func (h *DistributorHandlers) GetDistributor(c echo.Context) error {
	distributorID, err := common.ValidateUUID(c.Param("id"), "Distributor ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	distributor, err := h.distributorService.Details(c.Request().Context(), distributorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, distributor)
}

// CreateDistributor handles creating a distributor and its owning user
//
//	@Summary	Create distributor
//	@Tags		admin
//	@Param		body	body		services.AccountInput	true	"Distributor"
//	@Success	201		{object}	models.Distributor
//	@Failure	400		{object}	common.ErrorResponse
//	@Failure	409		{object}	common.ErrorResponse
//	@Router		/api/admin/distributors [post]
func (h *DistributorHandlers) CreateDistributor(c echo.Context) error {
	var req services.AccountInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	distributor, err := h.distributorService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, distributor)
}

// UpdateDistributor handles updating distributor details
func (h *DistributorHandlers) UpdateDistributor(c echo.Context) error {
	distributorID, err := common.ValidateUUID(c.Param("id"), "Distributor ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req services.AccountInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	distributor, err := h.distributorService.Update(c.Request().Context(), distributorID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, distributor)
}

// MyLocations lists the calling distributor's locations with their sellers.
func (h *DistributorHandlers) MyLocations(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	locations, err := h.distributorService.LocationsForUser(ctx, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locations)
}
