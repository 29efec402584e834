package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/makeready-service/internal/auth"
	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/events"
	"github.com/spec-kit/makeready-service/internal/repository"
	apperrors "github.com/spec-kit/makeready-service/pkg/util"
)

// ContactService is the public lead intake: anyone may submit, only admins
// read. Fields are stored verbatim; the intake never rejects a lead.
type ContactService struct {
	forms      repository.ContactFormRepository
	dispatcher events.Dispatcher
}

// NewContactService constructs the service.
func NewContactService(forms repository.ContactFormRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{forms: forms, dispatcher: dispatcher}
}

// Submit stores a contact form and returns its fresh id.
func (s *ContactService) Submit(ctx context.Context, caller auth.Caller, name, email, phone, message string) (*domain.ContactForm, error) {
	if err := auth.Authorize(caller, auth.OpSubmitContactForm); err != nil {
		return nil, err
	}

	form := &domain.ContactForm{
		ID:      generateContactFormID(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}
	if err := s.forms.Create(ctx, form); err != nil {
		return nil, apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventContactFormSubmitted,
		Subject: form.ID,
		Actor:   caller.Principal,
		Payload: events.ContactFormSubmittedPayload{Email: form.Email},
	})
	return form, nil
}

// ListForms returns all submissions, admin-only.
func (s *ContactService) ListForms(ctx context.Context, caller auth.Caller) ([]domain.ContactForm, error) {
	if err := auth.Authorize(caller, auth.OpReadAllContactForms); err != nil {
		return nil, err
	}
	forms, err := s.forms.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return forms, nil
}

// GetForm returns a single submission, admin-only.
func (s *ContactService) GetForm(ctx context.Context, caller auth.Caller, id string) (*domain.ContactForm, error) {
	if err := auth.Authorize(caller, auth.OpReadContactForm); err != nil {
		return nil, err
	}
	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact form", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return form, nil
}

func generateContactFormID() string {
	return "CF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
