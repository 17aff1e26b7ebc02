package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/service"
)

// DashboardHandler serves the role-specific dashboard pages behind the edge
// middleware and the route guard.
type DashboardHandler struct {
	assessments *service.AssessmentService
	inventory   *service.InventoryService
	feedback    *service.FeedbackService
}

func NewDashboardHandler(assessments *service.AssessmentService, inventory *service.InventoryService, feedback *service.FeedbackService) *DashboardHandler {
	return &DashboardHandler{assessments: assessments, inventory: inventory, feedback: feedback}
}

// Doctor renders the doctor dashboard: the caller's identity plus their
// patient summaries.
func (h *DashboardHandler) Doctor(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	patients, err := h.assessments.ListSummaries(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":     identity,
		"patients": patients,
	})
}

// Admin renders the admin dashboard: identity, inventory stats and feedback
// stats.
func (h *DashboardHandler) Admin(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	invStats, err := h.inventory.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	fbStats, err := h.feedback.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":      identity,
		"inventory": invStats,
		"feedback":  fbStats,
	})
}
