package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"churchdata/internal/domain/schema"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// schemaLockKey ключ advisory-блокировки, сериализующей активацию версий
const schemaLockKey int64 = 0x636875726368

const schemaColumns = `id::text, version, elements, is_active, created_at`

type SchemaRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSchemaRepository(pool *pgxpool.Pool, log *slog.Logger) *SchemaRepository {
	return &SchemaRepository{
		pool: pool,
		log:  log.With("component", "schema_repository"),
	}
}

func (r *SchemaRepository) GetActive(ctx context.Context) (*schema.Version, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+schemaColumns+` FROM form_schema WHERE is_active ORDER BY version DESC LIMIT 1`)
	v, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schema.ErrNotFound
		}
		return nil, fmt.Errorf("select active schema: %w", err)
	}
	return v, nil
}

func (r *SchemaRepository) List(ctx context.Context) ([]schema.Version, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+schemaColumns+` FROM form_schema ORDER BY version DESC`)
	if err != nil {
		return nil, fmt.Errorf("list schema versions: %w", err)
	}
	defer rows.Close()

	versions := []schema.Version{}
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema versions: %w", err)
	}
	return versions, nil
}

// Activate выполняется под transaction-level advisory lock, поэтому параллельные
// активации получают разные номера версий и активной остается ровно одна.
func (r *SchemaRepository) Activate(ctx context.Context, elements []schema.FieldDef) (*schema.Version, error) {
	payload, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.log.Error("rollback failed", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockKey); err != nil {
		return nil, fmt.Errorf("lock schema: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE form_schema SET is_active = FALSE WHERE is_active`); err != nil {
		return nil, fmt.Errorf("deactivate schemas: %w", err)
	}

	var next int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) + 1 FROM form_schema`).Scan(&next); err != nil {
		return nil, fmt.Errorf("next schema version: %w", err)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO form_schema (version, elements, is_active) VALUES ($1, $2, TRUE)
		 RETURNING `+schemaColumns,
		next, payload)
	v, err := scanVersion(row)
	if err != nil {
		return nil, fmt.Errorf("insert schema: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit schema: %w", err)
	}
	return v, nil
}

func scanVersion(row pgx.Row) (*schema.Version, error) {
	var (
		v        schema.Version
		elements []byte
	)
	if err := row.Scan(&v.ID, &v.Version, &elements, &v.IsActive, &v.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(elements, &v.Elements); err != nil {
		return nil, fmt.Errorf("decode elements of schema %d: %w", v.Version, err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return &v, nil
}
