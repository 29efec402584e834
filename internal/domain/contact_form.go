package domain

import "time"

// ContactForm is a public lead submission. Append-only; intake never
// rejects a lead, so fields are stored verbatim.
type ContactForm struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}
