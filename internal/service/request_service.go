package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/events"
	"github.com/spec-kit/makeready-service/internal/repository"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// RequestService drives the service-request workflow: creation against an
// existing property, admin-only status transitions, and append-only photo
// references. The property registry is consulted only at creation time.
type RequestService struct {
	requests   repository.ServiceRequestRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// RequestDependencies bundles collaborators for the request service.
type RequestDependencies struct {
	RequestRepo  repository.ServiceRequestRepository
	PropertyRepo repository.PropertyRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// RequestCreateInput describes request creation payload.
type RequestCreateInput struct {
	PropertyID  string
	Title       string
	Description string
	Urgency     domain.RequestUrgency
}

// NewRequestService constructs the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	return &RequestService{
		requests:   deps.RequestRepo,
		properties: deps.PropertyRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateRequest files a request against an existing property. Status starts
// at Pending; the caller becomes creator.
func (s *RequestService) CreateRequest(ctx context.Context, caller auth.Caller, input RequestCreateInput) (*domain.ServiceRequest, error) {
	if err := auth.Authorize(caller, auth.OpCreateRequest); err != nil {
		return nil, err
	}
	if _, err := s.properties.GetByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": input.PropertyID})
		}
		return nil, apperrors.MapError(err)
	}

	request := &domain.ServiceRequest{
		ID:          generateRequestID(),
		PropertyID:  input.PropertyID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Urgency:     input.Urgency,
		Status:      domain.StatusPending,
		CreatedBy:   caller.Principal,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventRequestCreated,
		Subject: request.ID,
		Actor:   caller.Principal,
		Payload: events.RequestCreatedPayload{
			PropertyID: request.PropertyID,
			Urgency:    request.Urgency,
			Title:      request.Title,
		},
	})
	return request, nil
}

// UpdateStatus moves a request to the given status. Admin-only; no ordering
// constraint between states. Setting the current status again is an
// idempotent success that leaves the record untouched.
func (s *RequestService) UpdateStatus(ctx context.Context, caller auth.Caller, id string, newStatus domain.RequestStatus) (*domain.ServiceRequest, error) {
	if err := auth.Authorize(caller, auth.OpUpdateRequestStatus); err != nil {
		return nil, err
	}
	current, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == newStatus {
		return current, nil
	}

	updated, err := s.requests.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("service request", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventRequestStatusChanged,
		Subject: updated.ID,
		Actor:   caller.Principal,
		Payload: events.RequestStatusChangedPayload{
			OldStatus: current.Status,
			NewStatus: updated.Status,
		},
	})
	s.logger.Info("request status changed",
		zap.String("request_id", updated.ID),
		zap.String("old_status", string(current.Status)),
		zap.String("new_status", string(updated.Status)))
	return updated, nil
}

// UploadPhoto appends an opaque content reference to the request's photo
// sequence. No cap on count is enforced here.
func (s *RequestService) UploadPhoto(ctx context.Context, caller auth.Caller, id, contentRef string) (*domain.ServiceRequest, error) {
	if err := auth.Authorize(caller, auth.OpUploadPhoto); err != nil {
		return nil, err
	}
	updated, err := s.requests.AppendPhoto(ctx, id, contentRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("service request", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventRequestPhotoAdded,
		Subject: updated.ID,
		Actor:   caller.Principal,
		Payload: events.RequestPhotoAddedPayload{
			ContentRef: contentRef,
			PhotoCount: len(updated.Photos),
		},
	})
	return updated, nil
}

// GetRequest fetches a single request.
func (s *RequestService) GetRequest(ctx context.Context, caller auth.Caller, id string) (*domain.ServiceRequest, error) {
	if err := auth.Authorize(caller, auth.OpReadRequest); err != nil {
		return nil, err
	}
	return s.getByID(ctx, id)
}

// ListRequests returns every request. Authenticated-read with no per-owner
// filtering, matching the observed contract; ordering is not part of the
// contract.
func (s *RequestService) ListRequests(ctx context.Context, caller auth.Caller) ([]domain.ServiceRequest, error) {
	if err := auth.Authorize(caller, auth.OpReadRequests); err != nil {
		return nil, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

func (s *RequestService) getByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("service request", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

func generateRequestID() string {
	return "REQ-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
