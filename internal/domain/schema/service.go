package schema

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Active(ctx context.Context) (*Version, error)
	History(ctx context.Context) ([]Version, error)
	Activate(ctx context.Context, elements []FieldDef) (*Version, error)
}

// Service управляет версиями схемы формы
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// NewService создает сервис. cache может быть nil.
func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "schema_service"),
	}
}

// Active возвращает активную версию, а если ее нет - встроенную схему версии 1
func (s *Service) Active(ctx context.Context) (*Version, error) {
	if s.cache != nil {
		v, err := s.cache.Get(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("schema cache read failed", "error", err)
		}
	}

	v, err := s.repo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to get active schema", "error", err)
			return nil, fmt.Errorf("get active schema: %w", err)
		}
		v = defaultVersion()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, v); err != nil {
			s.log.Warn("schema cache write failed", "error", err)
		}
	}
	return v, nil
}

// History возвращает все сохраненные версии, новые первыми
func (s *Service) History(ctx context.Context) ([]Version, error) {
	versions, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list schema versions", "error", err)
		return nil, fmt.Errorf("list schema versions: %w", err)
	}
	if versions == nil {
		versions = []Version{}
	}
	return versions, nil
}

// Activate сохраняет elements как новую активную версию
func (s *Service) Activate(ctx context.Context, elements []FieldDef) (*Version, error) {
	if err := ValidateElements(elements); err != nil {
		return nil, err
	}

	v, err := s.repo.Activate(ctx, elements)
	if err != nil {
		s.log.Error("failed to activate schema", "error", err)
		return nil, fmt.Errorf("activate schema: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("schema cache invalidation failed", "error", err)
		}
	}

	s.log.Info("schema activated", "version", v.Version, "elements", len(v.Elements))
	return v, nil
}
