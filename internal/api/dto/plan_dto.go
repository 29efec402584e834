package dto

// PlanResponse carries a pricing-plan catalog entry on the wire.
type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MonthlyPrice int64    `json:"monthly_price"`
	Features     []string `json:"features"`
}
