package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/makeready-service/internal/domain"
	"github.com/spec-kit/makeready-service/internal/repository"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories mirroring the Postgres sentinels
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	byPrincipal map[domain.Principal]*domain.UserProfile
	getErr      error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byPrincipal: make(map[domain.Principal]*domain.UserProfile)}
}

func (r *stubProfileRepo) Get(_ context.Context, principal domain.Principal) (*domain.UserProfile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	profile, ok := r.byPrincipal[principal]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

// Save mirrors the upsert: role sticks on re-save, name is overwritten.
func (r *stubProfileRepo) Save(_ context.Context, profile *domain.UserProfile) error {
	now := time.Now()
	if existing, ok := r.byPrincipal[profile.Principal]; ok {
		existing.Name = profile.Name
		existing.UpdatedAt = now
		profile.Role = existing.Role
		profile.CreatedAt = existing.CreatedAt
		profile.UpdatedAt = now
		return nil
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now
	clone := *profile
	r.byPrincipal[profile.Principal] = &clone
	return nil
}

func (r *stubProfileRepo) UpdateRole(_ context.Context, principal domain.Principal, role domain.UserRole) error {
	profile, ok := r.byPrincipal[principal]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Role = role
	profile.UpdatedAt = time.Now()
	return nil
}

type stubPropertyRepo struct {
	byID      map[string]*domain.Property
	createErr error
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, property *domain.Property) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byID[property.ID]; exists {
		return repository.ErrDuplicateID
	}
	property.CreatedAt = time.Now()
	clone := *property
	r.byID[property.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) GetByID(_ context.Context, id string) (*domain.Property, error) {
	property, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *property
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context) ([]domain.Property, error) {
	result := make([]domain.Property, 0, len(r.byID))
	for _, property := range r.byID {
		result = append(result, *property)
	}
	return result, nil
}

type stubRequestRepo struct {
	byID      map[string]*domain.ServiceRequest
	createErr error
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{byID: make(map[string]*domain.ServiceRequest)}
}

func (r *stubRequestRepo) Create(_ context.Context, request *domain.ServiceRequest) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byID[request.ID]; exists {
		return repository.ErrDuplicateID
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	clone := cloneRequest(request)
	r.byID[request.ID] = clone
	return nil
}

func (r *stubRequestRepo) GetByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	request, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cloneRequest(request), nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]domain.ServiceRequest, error) {
	result := make([]domain.ServiceRequest, 0, len(r.byID))
	for _, request := range r.byID {
		result = append(result, *cloneRequest(request))
	}
	return result, nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	request, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return cloneRequest(request), nil
}

func (r *stubRequestRepo) AppendPhoto(_ context.Context, id, contentRef string) (*domain.ServiceRequest, error) {
	request, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	request.Photos = append(request.Photos, contentRef)
	request.UpdatedAt = time.Now()
	return cloneRequest(request), nil
}

func cloneRequest(request *domain.ServiceRequest) *domain.ServiceRequest {
	clone := *request
	clone.Photos = append([]string(nil), request.Photos...)
	return &clone
}

type stubContactRepo struct {
	byID  map[string]*domain.ContactForm
	order []string
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{byID: make(map[string]*domain.ContactForm)}
}

func (r *stubContactRepo) Create(_ context.Context, form *domain.ContactForm) error {
	form.SubmittedAt = time.Now()
	clone := *form
	r.byID[form.ID] = &clone
	r.order = append(r.order, form.ID)
	return nil
}

func (r *stubContactRepo) GetByID(_ context.Context, id string) (*domain.ContactForm, error) {
	form, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *form
	return &clone, nil
}

func (r *stubContactRepo) List(_ context.Context) ([]domain.ContactForm, error) {
	result := make([]domain.ContactForm, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.byID[id])
	}
	return result, nil
}
