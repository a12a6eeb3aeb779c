package admin

import (
	"context"
)

type Repository interface {
	// Create сохраняет администратора, ErrAlreadyExists если email занят
	Create(ctx context.Context, email, passwordHash string) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
