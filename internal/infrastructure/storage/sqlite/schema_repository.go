package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"churchdata/internal/domain/schema"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const schemaColumns = `id, version, elements, is_active, created_at`

type SchemaRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSchemaRepository(db *sql.DB, log *slog.Logger) *SchemaRepository {
	return &SchemaRepository{
		db:  db,
		log: log.With("component", "schema_repository"),
	}
}

func (r *SchemaRepository) GetActive(ctx context.Context) (*schema.Version, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+schemaColumns+` FROM form_schema WHERE is_active ORDER BY version DESC LIMIT 1`)
	v, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schema.ErrNotFound
		}
		return nil, fmt.Errorf("select active schema: %w", err)
	}
	return v, nil
}

func (r *SchemaRepository) List(ctx context.Context) ([]schema.Version, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+schemaColumns+` FROM form_schema ORDER BY version DESC`)
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

// Activate в одной транзакции; единственное соединение сериализует параллельные вызовы
func (r *SchemaRepository) Activate(ctx context.Context, elements []schema.FieldDef) (*schema.Version, error) {
	payload, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.log.Error("rollback failed", "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `UPDATE form_schema SET is_active = 0 WHERE is_active`); err != nil {
		return nil, fmt.Errorf("deactivate schemas: %w", err)
	}

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) + 1 FROM form_schema`).Scan(&next); err != nil {
		return nil, fmt.Errorf("next schema version: %w", err)
	}

	v := &schema.Version{
		ID:        uuid.NewString(),
		Version:   next,
		Elements:  elements,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO form_schema (id, version, elements, is_active, created_at) VALUES (?, ?, ?, 1, ?)`,
		v.ID, v.Version, string(payload), v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit schema: %w", err)
	}
	return v, nil
}

func scanVersion(row scanner) (*schema.Version, error) {
	var (
		v        schema.Version
		elements string
	)
	if err := row.Scan(&v.ID, &v.Version, &elements, &v.IsActive, &v.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(elements), &v.Elements); err != nil {
		return nil, fmt.Errorf("decode elements of schema %d: %w", v.Version, err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return &v, nil
}
