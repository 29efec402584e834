package dto

// CreateRequestRequest is the service-request creation payload. Urgency uses
// the external string vocabulary and is validated at the boundary.
type CreateRequestRequest struct {
	PropertyID  string `json:"property_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

// UpdateStatusRequest carries the target status for a transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UploadPhotoRequest registers an opaque content reference.
type UploadPhotoRequest struct {
	ContentRef string `json:"content_ref"`
}

// ServiceRequestResponse carries a service request on the wire.
type ServiceRequestResponse struct {
	ID          string   `json:"id"`
	PropertyID  string   `json:"property_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Urgency     string   `json:"urgency"`
	Status      string   `json:"status"`
	CreatedBy   string   `json:"created_by"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
	Photos      []string `json:"photos"`
}
