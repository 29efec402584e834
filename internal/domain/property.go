package domain

import "time"

// Property is a listing registered by an agent. Immutable after creation;
// the creator becomes owner.
type Property struct {
	ID        string
	Address   string
	City      string
	State     string
	Zip       string
	Owner     Principal
	CreatedAt time.Time
}
