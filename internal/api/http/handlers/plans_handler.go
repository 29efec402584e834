package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/makeready-service/internal/api/dto"
	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/service"
)

// PlansHandler serves the read-only pricing catalog.
type PlansHandler struct {
	service *service.PlanService
}

// NewPlansHandler constructs handler.
func NewPlansHandler(planService *service.PlanService) *PlansHandler {
	return &PlansHandler{service: planService}
}

// ListPlans GET /plans.
func (h *PlansHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.service.ListPlans(c.Context(), auth.CallerFromContext(c))
	if err != nil {
		return err
	}
	items := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		items = append(items, planResponse(&plans[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetPlan GET /plans/:id.
func (h *PlansHandler) GetPlan(c *fiber.Ctx) error {
	plan, err := h.service.GetPlan(c.Context(), auth.CallerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": planResponse(plan)})
}

func planResponse(plan *domain.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Description:  plan.Description,
		MonthlyPrice: plan.MonthlyPrice,
		Features:     plan.Features,
	}
}
