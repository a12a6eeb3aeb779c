package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Member, error)
	Find(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, raw RawRecord) (*Member, error)
	Update(ctx context.Context, id string, patch RawRecord) (*Member, error)
	Delete(ctx context.Context, id string) error
}

// Service CRUD над записями для админки
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "member_service"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list members", "error", err)
		return nil, fmt.Errorf("list members: %w", err)
	}
	if members == nil {
		members = []Member{}
	}
	return members, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Member, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find member", "member_id", id, "error", err)
		return nil, fmt.Errorf("find member: %w", err)
	}
	return m, nil
}

// Create создает запись. Если id не передан, он генерируется.
func (s *Service) Create(ctx context.Context, raw RawRecord) (*Member, error) {
	now := s.now()

	m, err := Normalize(raw, now)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.SyncStatus = SyncStatusSynced
	m.UpdatedAt = now

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		s.log.Error("failed to create member", "member_id", m.ID, "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.log.Info("member created", "member_id", created.ID)
	return created, nil
}

// Update накладывает переданные поля на существующую запись
func (s *Service) Update(ctx context.Context, id string, patch RawRecord) (*Member, error) {
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := Merge(existing, patch, s.now())
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update member", "member_id", m.ID, "error", err)
		return nil, fmt.Errorf("update member: %w", err)
	}

	s.log.Info("member updated", "member_id", updated.ID)
	return updated, nil
}

// Delete удаляет запись безвозвратно
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ParseID(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete member", "member_id", id, "error", err)
		return fmt.Errorf("delete member: %w", err)
	}

	s.log.Info("member deleted", "member_id", id)
	return nil
}
