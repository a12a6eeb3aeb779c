package admin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (*Admin, error)
	Authenticate(ctx context.Context, email, password string) (*Admin, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	cost      int
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "admin_service"),
		cost:      bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (*Admin, error) {
	email = NormalizeEmail(email)
	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		s.log.Error("failed to create admin", "email", email, "error", err)
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("admin registered", "admin_id", a.ID)
	return a, nil
}

// Authenticate проверяет пароль. Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Admin, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Error("failed to find admin", "email", email, "error", err)
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}
