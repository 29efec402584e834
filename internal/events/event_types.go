package events

import (
	"time"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPropertyAdded        EventType = "property_added"
	EventRequestCreated       EventType = "request_created"
	EventRequestStatusChanged EventType = "request_status_changed"
	EventRequestPhotoAdded    EventType = "request_photo_added"
	EventContactFormSubmitted EventType = "contact_form_submitted"
)

// Event represents a domain event emitted by services. Subject is the id of
// the entity the event concerns; Actor is the principal who caused it
// (empty for anonymous contact submissions).
type Event struct {
	ID        string           `json:"id"`
	Type      EventType        `json:"type"`
	Subject   string           `json:"subject"`
	Actor     domain.Principal `json:"actor,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Payload   interface{}      `json:"payload"`
}

// PropertyAddedPayload payload.
type PropertyAddedPayload struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// RequestCreatedPayload payload.
type RequestCreatedPayload struct {
	PropertyID string                `json:"property_id"`
	Urgency    domain.RequestUrgency `json:"urgency"`
	Title      string                `json:"title"`
}

// RequestStatusChangedPayload payload.
type RequestStatusChangedPayload struct {
	OldStatus domain.RequestStatus `json:"old_status"`
	NewStatus domain.RequestStatus `json:"new_status"`
}

// RequestPhotoAddedPayload payload.
type RequestPhotoAddedPayload struct {
	ContentRef string `json:"content_ref"`
	PhotoCount int    `json:"photo_count"`
}

// ContactFormSubmittedPayload payload.
type ContactFormSubmittedPayload struct {
	Email string `json:"email"`
}
