package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"churchdata/internal/domain/admin"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type AdminRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewAdminRepository(db *sql.DB, log *slog.Logger) *AdminRepository {
	return &AdminRepository{
		db:  db,
		log: log.With("component", "admin_repository"),
	}
}

func (r *AdminRepository) Create(ctx context.Context, email, passwordHash string) (*admin.Admin, error) {
	a := &admin.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, admin.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return a, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var a admin.Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = ?`, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}
