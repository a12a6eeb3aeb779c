package member

import (
	"context"
)

// Repository хранилище записей. Update полностью перезаписывает строку (кроме created_at).
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	Get(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, m *Member) (*Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	Delete(ctx context.Context, id string) error
}
