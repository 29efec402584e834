package repository

import "github.com/spec-kit/makeready-service/internal/domain"

// PlanCatalog serves the static pricing-plan reference data. Seeded at
// construction, immutable afterwards, so reads need no synchronization.
type PlanCatalog struct {
	plans []domain.Plan
	byID  map[string]domain.Plan
}

// NewPlanCatalog loads the seed plans.
func NewPlanCatalog() *PlanCatalog {
	plans := seedPlans()
	byID := make(map[string]domain.Plan, len(plans))
	for _, plan := range plans {
		byID[plan.ID] = plan
	}
	return &PlanCatalog{plans: plans, byID: byID}
}

// List returns all plans in catalog order.
func (c *PlanCatalog) List() []domain.Plan {
	out := make([]domain.Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// GetByID looks up a single plan.
func (c *PlanCatalog) GetByID(id string) (domain.Plan, bool) {
	plan, ok := c.byID[id]
	return plan, ok
}

func seedPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:           "essential",
			Name:         "Essential",
			Description:  "Includes basic maintenance request management, photo uploads, and status tracking for up to 3 active listings.",
			MonthlyPrice: 99,
			Features: []string{
				"Up to 3 active listings",
				"Basic maintenance request management",
				"Photo uploads",
				"Status tracking",
				"Up to 2 hours of repairs/touch-ups",
				"Email support",
				"48-hour response time",
			},
		},
		{
			ID:           "pro",
			Name:         "Pro",
			Description:  "Includes all Essential features plus priority scheduling, unlimited active listings, and direct messaging with the admin team for faster response.",
			MonthlyPrice: 199,
			Features: []string{
				"All Essential features",
				"Unlimited active listings",
				"Priority scheduling",
				"Direct messaging with admin team",
				"Up to 5 hours including painting and fixture installs",
				"Faster response times",
				"Phone & email support",
				"24-hour response time",
			},
		},
		{
			ID:           "concierge",
			Name:         "Concierge",
			Description:  "Includes all Pro features plus custom make-ready coordination, on-site visit scheduling, and 24/7 request support for high-end listings.",
			MonthlyPrice: 299,
			Features: []string{
				"All Pro features",
				"Custom make-ready coordination",
				"On-site visit scheduling",
				"24/7 request support",
				"Up to 10 hours with full project coordination",
				"Staging assistance",
				"Dedicated account manager",
				"Full photo & video documentation",
				"Weekend & emergency service",
			},
		},
	}
}
