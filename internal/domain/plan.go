package domain

// Plan is a static pricing-plan catalog entry. Seeded once, never mutated
// through the public contract.
type Plan struct {
	ID           string
	Name         string
	Description  string
	MonthlyPrice int64
	Features     []string
}
