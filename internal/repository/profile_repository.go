package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// ProfileRepository defines persistence access for user profiles.
type ProfileRepository interface {
	Get(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error)
	// Save upserts the profile. The role column is written only on first
	// insert; re-saves never touch it, so owners cannot change their own role.
	Save(ctx context.Context, profile *domain.UserProfile) error
	UpdateRole(ctx context.Context, principal domain.Principal, role domain.UserRole) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Get(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error) {
	const query = `
        SELECT principal, name, role, created_at, updated_at
        FROM user_profiles WHERE principal=$1`

	var profile domain.UserProfile
	if err := r.pool.QueryRow(ctx, query, string(principal)).Scan(
		&profile.Principal,
		&profile.Name,
		&profile.Role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
        INSERT INTO user_profiles (principal, name, role)
        VALUES ($1, $2, $3)
        ON CONFLICT (principal) DO UPDATE SET name=EXCLUDED.name, updated_at=NOW()
        RETURNING role, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		string(profile.Principal),
		profile.Name,
		profile.Role,
	).Scan(&profile.Role, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) UpdateRole(ctx context.Context, principal domain.Principal, role domain.UserRole) error {
	const query = `UPDATE user_profiles SET role=$1, updated_at=NOW() WHERE principal=$2`

	cmd, err := r.pool.Exec(ctx, query, string(role), string(principal))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
