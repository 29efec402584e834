package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// ServiceRequestRepository encapsulates service request persistence. Status
// and photo writes update updated_at in the same statement so readers always
// observe a consistent record.
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context) ([]domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.ServiceRequest, error)
	AppendPhoto(ctx context.Context, id, contentRef string) (*domain.ServiceRequest, error)
}

type serviceRequestRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRequestRepository instantiates repository.
func NewServiceRequestRepository(pool *pgxpool.Pool) ServiceRequestRepository {
	return &serviceRequestRepository{pool: pool}
}

const requestColumns = `id, property_id, title, description, urgency, status, created_by, photos, created_at, updated_at`

func (r *serviceRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	const query = `
        INSERT INTO service_requests (id, property_id, title, description, urgency, status, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		request.ID,
		request.PropertyID,
		request.Title,
		request.Description,
		request.Urgency,
		request.Status,
		string(request.CreatedBy),
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	query := `
        UPDATE service_requests SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + requestColumns
	return r.fetchSingle(ctx, query, status, id)
}

func (r *serviceRequestRepository) AppendPhoto(ctx context.Context, id, contentRef string) (*domain.ServiceRequest, error) {
	query := `
        UPDATE service_requests SET photos=array_append(photos, $1), updated_at=NOW()
        WHERE id=$2
        RETURNING ` + requestColumns
	return r.fetchSingle(ctx, query, contentRef, id)
}

func (r *serviceRequestRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.ServiceRequest, error) {
	var request domain.ServiceRequest
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&request.ID,
		&request.PropertyID,
		&request.Title,
		&request.Description,
		&request.Urgency,
		&request.Status,
		&request.CreatedBy,
		&request.Photos,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func scanRequests(rows pgx.Rows) ([]domain.ServiceRequest, error) {
	var result []domain.ServiceRequest
	for rows.Next() {
		var request domain.ServiceRequest
		if err := rows.Scan(
			&request.ID,
			&request.PropertyID,
			&request.Title,
			&request.Description,
			&request.Urgency,
			&request.Status,
			&request.CreatedBy,
			&request.Photos,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
