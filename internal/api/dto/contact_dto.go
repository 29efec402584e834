package dto

// SubmitContactFormRequest is the public lead payload; stored verbatim.
type SubmitContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactFormResponse carries a submission on the wire.
type ContactFormResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	SubmittedAt int64  `json:"submitted_at"`
}
