package schema

import (
	"context"
)

// Repository хранилище версий схемы
type Repository interface {
	// GetActive возвращает активную версию или ErrNotFound
	GetActive(ctx context.Context) (*Version, error)
	// List возвращает все версии, новые первыми
	List(ctx context.Context) ([]Version, error)
	// Activate в одной транзакции снимает флаг активности со всех версий
	// и сохраняет elements как новую активную версию max(version)+1
	Activate(ctx context.Context, elements []FieldDef) (*Version, error)
}

// Cache кэш активной версии. Get возвращает ErrCacheMiss, если значения нет.
type Cache interface {
	Get(ctx context.Context) (*Version, error)
	Set(ctx context.Context, v *Version) error
	Invalidate(ctx context.Context) error
}
