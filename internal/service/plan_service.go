package service

import (
	"context"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/repository"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// PlanService serves the read-only pricing catalog. No authorization
// required; the data is public reference material.
type PlanService struct {
	catalog *repository.PlanCatalog
}

// NewPlanService constructs the service.
func NewPlanService(catalog *repository.PlanCatalog) *PlanService {
	return &PlanService{catalog: catalog}
}

// ListPlans returns all plans.
func (s *PlanService) ListPlans(_ context.Context, caller auth.Caller) ([]domain.Plan, error) {
	if err := auth.Authorize(caller, auth.OpReadPlans); err != nil {
		return nil, err
	}
	return s.catalog.List(), nil
}

// GetPlan returns a single plan.
func (s *PlanService) GetPlan(_ context.Context, caller auth.Caller, id string) (*domain.Plan, error) {
	if err := auth.Authorize(caller, auth.OpReadPlans); err != nil {
		return nil, err
	}
	plan, ok := s.catalog.GetByID(id)
	if !ok {
		return nil, apperrors.NewNotFound("plan", map[string]any{"id": id})
	}
	return &plan, nil
}
