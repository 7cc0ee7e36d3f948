package handlers

import (
	"net/http"

	"elocalpass/internal/common"
	"elocalpass/internal/models"
	"elocalpass/internal/services"

	"github.com/labstack/echo/v4"
)

// ActivationHandlers exposes the status toggle of every hierarchy level.
type ActivationHandlers struct {
	activation services.ActivationService
}

func NewActivationHandlers(activation services.ActivationService) *ActivationHandlers {
	return &ActivationHandlers{activation: activation}
}

// ActivationCheckResponse previews a toggle without applying it.
type ActivationCheckResponse struct {
	services.ActivationDecision
	Permitted bool          `json:"permitted"`
	Ancestors []models.Node `json:"ancestors"`
}

func (h *ActivationHandlers) targetID(c echo.Context, kind models.EntityKind) (models.EntityRef, error) {
	id, err := common.ValidateUUID(c.Param("id"), string(kind)+" ID")
	if err != nil {
		return models.EntityRef{}, echo.NewHTTPError(http.StatusBadRequest, capitalize(err.Error()))
	}
	return models.EntityRef{Kind: kind, ID: id}, nil
}

// ToggleStatus returns the handler for PATCH /{kind}s/:id/toggle-status.
// Activation is refused with 409 while any ancestor is inactive; deactivation
// always succeeds and never touches descendants.
//
//	@Summary	Toggle active flag
//	@Tags		admin
//	@Param		id	path		string	true	"Entity ID"
//	@Success	200	{object}	services.ToggleResult
//	@Failure	404	{object}	common.ErrorResponse
//	@Failure	409	{object}	handlers.BlockedResponse
//	@Router		/api/admin/distributors/{id}/toggle-status [patch]
//	@Router		/api/admin/locations/{id}/toggle-status [patch]
//	@Router		/api/admin/sellers/{id}/toggle-status [patch]
func (h *ActivationHandlers) ToggleStatus(kind models.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ref, err := h.targetID(c, kind)
		if err != nil {
			return err
		}

		result, err := h.activation.RequestToggle(c.Request().Context(), ref.Kind, ref.ID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, result)
	}
}

// CheckActivation returns the handler for GET /{kind}s/:id/activation.
func (h *ActivationHandlers) CheckActivation(kind models.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ref, err := h.targetID(c, kind)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		decision, err := h.activation.EvaluateActivationPrecondition(ctx, ref.Kind, ref.ID)
		if err != nil {
			return err
		}
		ancestors, err := h.activation.AncestorsOf(ctx, ref.Kind, ref.ID)
		if err != nil {
			return err
		}
		if ancestors == nil {
			ancestors = []models.Node{}
		}

		return c.JSON(http.StatusOK, ActivationCheckResponse{
			ActivationDecision: *decision,
			Permitted:          decision.Permitted(),
			Ancestors:          ancestors,
		})
	}
}
