package postgres

import (
	"context"
	"errors"
	"fmt"

	"churchdata/internal/domain/admin"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

func NewAdminRepository(pool *pgxpool.Pool, log *slog.Logger) *AdminRepository {
	return &AdminRepository{
		pool: pool,
		log:  log.With("component", "admin_repository"),
	}
}

type AdminRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *AdminRepository) Create(ctx context.Context, email, passwordHash string) (*admin.Admin, error) {
	var a admin.Admin
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		 RETURNING id::text, email, password_hash, created_at`,
		email, passwordHash).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, admin.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return &a, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var a admin.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT id::text, email, password_hash, created_at FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	return &a, nil
}
