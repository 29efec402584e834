package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// ContactFormRepository persists public lead submissions. Append-only.
type ContactFormRepository interface {
	Create(ctx context.Context, form *domain.ContactForm) error
	GetByID(ctx context.Context, id string) (*domain.ContactForm, error)
	List(ctx context.Context) ([]domain.ContactForm, error)
}

type contactFormRepository struct {
	pool *pgxpool.Pool
}

// NewContactFormRepository constructs repository.
func NewContactFormRepository(pool *pgxpool.Pool) ContactFormRepository {
	return &contactFormRepository{pool: pool}
}

func (r *contactFormRepository) Create(ctx context.Context, form *domain.ContactForm) error {
	const query = `
        INSERT INTO contact_forms (id, name, email, phone, message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING submitted_at`

	return r.pool.QueryRow(ctx, query,
		form.ID,
		form.Name,
		form.Email,
		form.Phone,
		form.Message,
	).Scan(&form.SubmittedAt)
}

func (r *contactFormRepository) GetByID(ctx context.Context, id string) (*domain.ContactForm, error) {
	const query = `
        SELECT id, name, email, phone, message, submitted_at
        FROM contact_forms WHERE id=$1`

	var form domain.ContactForm
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&form.ID,
		&form.Name,
		&form.Email,
		&form.Phone,
		&form.Message,
		&form.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *contactFormRepository) List(ctx context.Context) ([]domain.ContactForm, error) {
	const query = `
        SELECT id, name, email, phone, message, submitted_at
        FROM contact_forms ORDER BY submitted_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactForm
	for rows.Next() {
		var form domain.ContactForm
		if err := rows.Scan(
			&form.ID,
			&form.Name,
			&form.Email,
			&form.Phone,
			&form.Message,
			&form.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, form)
	}
	return result, rows.Err()
}
