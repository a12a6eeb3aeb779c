package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"churchdata/internal/domain/member"

	"golang.org/x/exp/slog"
)

var errNotObject = fmt.Errorf("%w: record must be a JSON object", member.ErrInvalidData)

// Servicer интерфейс сервиса синхронизации
type Servicer interface {
	// Reconcile сохраняет пакет записей с мобильного клиента и возвращает отчет по каждой
	Reconcile(ctx context.Context, batch []member.RawRecord) (*Report, error)
}

// Service реализация сервиса синхронизации
type Service struct {
	repo member.Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService создает новый сервис синхронизации
func NewService(repo member.Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "sync_service"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// DecodeBatch разбирает значение поля records. Это должен быть непустой массив;
// элементы, не являющиеся объектами, становятся nil и попадают в failed.
func DecodeBatch(raw json.RawMessage) ([]member.RawRecord, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrInvalidBatch
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}
	if len(items) == 0 {
		return nil, ErrInvalidBatch
	}

	batch := make([]member.RawRecord, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			batch[i] = obj
		}
	}
	return batch, nil
}

// Reconcile обрабатывает записи строго по порядку. Ошибка одной записи не прерывает
// остальные, общей транзакции нет. При совпадении id побеждает последняя запись.
func (s *Service) Reconcile(ctx context.Context, batch []member.RawRecord) (*Report, error) {
	if len(batch) == 0 {
		return nil, ErrInvalidBatch
	}

	report := newReport(len(batch))
	for _, raw := range batch {
		id := raw.ID()
		if canonical, err := member.ParseID(id); err == nil {
			id = canonical
		}

		if err := ctx.Err(); err != nil {
			report.fail(id, err)
			continue
		}

		m, action, err := s.reconcileOne(ctx, raw)
		if err != nil {
			s.log.Warn("sync record failed", "member_id", id, "error", err)
			report.fail(id, err)
			continue
		}
		report.succeed(m.ID, action, m)
	}

	s.log.Info("sync completed",
		"total", report.Total,
		"successful", report.Successful,
		"failed", report.Failed,
	)
	return report, nil
}

func (s *Service) reconcileOne(ctx context.Context, raw member.RawRecord) (*member.Member, string, error) {
	if raw == nil {
		return nil, "", errNotObject
	}

	now := s.now()
	m, err := member.Normalize(raw, now)
	if err != nil {
		return nil, "", err
	}
	if m.ID == "" {
		return nil, "", member.ErrMissingID
	}
	if err := m.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := s.repo.Get(ctx, m.ID)
	if err != nil && !errors.Is(err, member.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup member: %w", err)
	}

	m.SyncStatus = member.SyncStatusSynced
	m.UpdatedAt = now

	if existing != nil {
		m.CreatedAt = existing.CreatedAt
		updated, err := s.repo.Update(ctx, m)
		if err != nil {
			return nil, "", fmt.Errorf("update member: %w", err)
		}
		return updated, ActionUpdated, nil
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, "", fmt.Errorf("create member: %w", err)
	}
	return created, ActionCreated, nil
}
