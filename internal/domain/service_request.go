package domain

import (
	"fmt"
	"time"
)

// RequestStatus enumerates workflow states for service requests. No
// transition table is enforced: admins may move a request between any two
// states, including reopening a completed one.
type RequestStatus string

const (
	StatusPending    RequestStatus = "Pending"
	StatusScheduled  RequestStatus = "Scheduled"
	StatusInProgress RequestStatus = "In Progress"
	StatusCompleted  RequestStatus = "Completed"
)

// ParseRequestStatus validates the external string form.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// RequestUrgency is the priority tag on a service request.
type RequestUrgency string

const (
	UrgencyLow         RequestUrgency = "Low"
	UrgencyMedium      RequestUrgency = "Medium"
	UrgencyHigh        RequestUrgency = "High"
	UrgencyShowstopper RequestUrgency = "Inspection Showstopper"
)

// ParseRequestUrgency validates the external string form.
func ParseRequestUrgency(s string) (RequestUrgency, error) {
	switch RequestUrgency(s) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyShowstopper:
		return RequestUrgency(s), nil
	}
	return "", fmt.Errorf("unknown urgency %q", s)
}

// ServiceRequest is the aggregate for maintenance work filed against a
// property. Photos holds opaque content references in append order.
type ServiceRequest struct {
	ID          string
	PropertyID  string
	Title       string
	Description string
	Urgency     RequestUrgency
	Status      RequestStatus
	CreatedBy   Principal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Photos      []string
}
