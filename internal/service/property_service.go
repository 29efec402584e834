package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/events"
	"github.com/spec-kit/makeready-service/internal/repository"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// PropertyService coordinates the property registry. Properties are owned by
// the agent who created them and never change afterwards.
type PropertyService struct {
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
}

// PropertyCreateInput describes property registration payload. The id is
// caller-supplied; address fields are stored verbatim, no geocoding.
type PropertyCreateInput struct {
	ID      string
	Address string
	City    string
	State   string
	Zip     string
}

// NewPropertyService constructs the service.
func NewPropertyService(properties repository.PropertyRepository, dispatcher events.Dispatcher) *PropertyService {
	return &PropertyService{properties: properties, dispatcher: dispatcher}
}

// AddProperty registers a property owned by the caller. A colliding id is a
// conflict and leaves the existing record untouched.
func (s *PropertyService) AddProperty(ctx context.Context, caller auth.Caller, input PropertyCreateInput) (*domain.Property, error) {
	if err := auth.Authorize(caller, auth.OpAddProperty); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ID) == "" {
		return nil, apperrors.NewValidationError("property id required", nil)
	}

	property := &domain.Property{
		ID:      input.ID,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
		Owner:   caller.Principal,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, apperrors.NewConflict("property id already exists", map[string]any{"id": input.ID})
		}
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventPropertyAdded,
		Subject: property.ID,
		Actor:   caller.Principal,
		Payload: events.PropertyAddedPayload{City: property.City, State: property.State},
	})
	return property, nil
}

// GetProperty fetches a single property.
func (s *PropertyService) GetProperty(ctx context.Context, caller auth.Caller, id string) (*domain.Property, error) {
	if err := auth.Authorize(caller, auth.OpReadProperty); err != nil {
		return nil, err
	}
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return property, nil
}

// ListProperties returns every registered property. Authenticated-read with
// no per-owner filtering, matching the observed contract.
func (s *PropertyService) ListProperties(ctx context.Context, caller auth.Caller) ([]domain.Property, error) {
	if err := auth.Authorize(caller, auth.OpReadProperties); err != nil {
		return nil, err
	}
	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return properties, nil
}
