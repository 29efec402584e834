package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// ErrDuplicateID signals a keyed insert collided with an existing record.
var ErrDuplicateID = errors.New("duplicate id")

// PropertyRepository encapsulates property persistence. Properties are never
// updated or deleted after creation.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository instantiates repository.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	const query = `
        INSERT INTO properties (id, address, city, state, zip, owner)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		property.ID,
		property.Address,
		property.City,
		property.State,
		property.Zip,
		string(property.Owner),
	).Scan(&property.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	const query = `
        SELECT id, address, city, state, zip, owner, created_at
        FROM properties WHERE id=$1`

	var property domain.Property
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.Address,
		&property.City,
		&property.State,
		&property.Zip,
		&property.Owner,
		&property.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	const query = `
        SELECT id, address, city, state, zip, owner, created_at
        FROM properties ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Property
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(
			&property.ID,
			&property.Address,
			&property.City,
			&property.State,
			&property.Zip,
			&property.Owner,
			&property.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, property)
	}
	return result, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
