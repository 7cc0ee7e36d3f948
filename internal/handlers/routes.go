package handlers

import (
	"elocalpass/internal/middleware"
	"elocalpass/internal/models"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every handler group the API serves.
type Handlers struct {
	Health       *HealthHandlers
	Auth         *AuthHandlers
	Distributors *DistributorHandlers
	Locations    *LocationHandlers
	Sellers      *SellerHandlers
	Activation   *ActivationHandlers
	Customer     *CustomerHandlers
}

// RouteMiddleware carries the middleware attached to route groups. Session is
// required; the others are skipped when nil.
type RouteMiddleware struct {
	Session           echo.MiddlewareFunc
	CustomerRateLimit echo.MiddlewareFunc
	Audit             echo.MiddlewareFunc
}

// RegisterRoutes mounts the API on e. Role gates follow the path prefix.
func RegisterRoutes(e *echo.Echo, h Handlers, mw RouteMiddleware) {
	e.GET("/health", h.Health.LivenessCheck)
	e.GET("/health/ready", h.Health.ReadinessCheck)

	api := e.Group("/api")

	// Public
	api.POST("/auth/login", h.Auth.Login)
	customer := api.Group("/customer", optional(mw.CustomerRateLimit)...)
	customer.GET("/access", h.Customer.Access)

	protected := api.Group("", mw.Session)
	protected.GET("/me", h.Auth.Me)

	admin := protected.Group("/admin", append([]echo.MiddlewareFunc{middleware.RequireRole(models.RoleAdmin)}, optional(mw.Audit)...)...)
	admin.GET("/distributors", h.Distributors.ListDistributors)
	admin.POST("/distributors", h.Distributors.CreateDistributor)
	admin.GET("/distributors/:id", h.Distributors.GetDistributor)
	admin.PUT("/distributors/:id", h.Distributors.UpdateDistributor)
	admin.POST("/locations", h.Locations.CreateLocation)
	admin.PUT("/locations/:id", h.Locations.UpdateLocation)
	admin.POST("/sellers", h.Sellers.CreateSeller)

	for _, kind := range []models.EntityKind{models.KindDistributor, models.KindLocation, models.KindSeller} {
		prefix := "/" + string(kind) + "s/:id"
		admin.PATCH(prefix+"/toggle-status", h.Activation.ToggleStatus(kind))
		admin.GET(prefix+"/activation", h.Activation.CheckActivation(kind))
	}

	distributor := protected.Group("/distributor", middleware.RequireRole(models.RoleDistributor))
	distributor.GET("/locations", h.Distributors.MyLocations)

	location := protected.Group("/location", middleware.RequireRole(models.RoleLocation))
	location.GET("/sellers", h.Locations.MySellers)

	seller := protected.Group("/seller", middleware.RequireRole(models.RoleSeller))
	seller.GET("/config", h.Sellers.MyConfig)
}

func optional(mw echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if mw == nil {
		return nil
	}
	return []echo.MiddlewareFunc{mw}
}
