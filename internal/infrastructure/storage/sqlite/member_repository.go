package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"churchdata/internal/domain/member"

	"golang.org/x/exp/slog"
)

const memberColumns = `id, first_name, last_name, dob, age, gender, phone, address,
	baptized, water_baptized, holy_ghost_baptized, presiding_elder, working, occupation,
	marital_status, children_count, ministry, joined_date, picture, metadata,
	sync_status, created_at, updated_at`

type MemberRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMemberRepository(db *sql.DB, log *slog.Logger) *MemberRepository {
	return &MemberRepository{
		db:  db,
		log: log.With("component", "member_repository"),
	}
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []member.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func (r *MemberRepository) Get(ctx context.Context, id string) (*member.Member, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) (*member.Member, error) {
	metadata, err := marshalMetadata(m.Metadata)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO members (`+memberColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.FirstName, m.LastName, m.DOB, m.Age, m.Gender, m.Phone, m.Address,
		m.Baptized, m.WaterBaptized, m.HolyGhostBaptized, m.PresidingElder, m.Working, m.Occupation,
		m.MaritalStatus, m.ChildrenCount, m.Ministry, m.JoinedDate, m.Picture, nullableText(metadata),
		m.SyncStatus, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, member.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	return r.Get(ctx, m.ID)
}

// Update перезаписывает все поля строки, кроме id и created_at
func (r *MemberRepository) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	metadata, err := marshalMetadata(m.Metadata)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE members SET
			first_name = ?, last_name = ?, dob = ?, age = ?, gender = ?, phone = ?,
			address = ?, baptized = ?, water_baptized = ?, holy_ghost_baptized = ?,
			presiding_elder = ?, working = ?, occupation = ?, marital_status = ?,
			children_count = ?, ministry = ?, joined_date = ?, picture = ?,
			metadata = ?, sync_status = ?, updated_at = ?
		WHERE id = ?`,
		m.FirstName, m.LastName, m.DOB, m.Age, m.Gender, m.Phone,
		m.Address, m.Baptized, m.WaterBaptized, m.HolyGhostBaptized,
		m.PresidingElder, m.Working, m.Occupation, m.MaritalStatus,
		m.ChildrenCount, m.Ministry, m.JoinedDate, m.Picture,
		nullableText(metadata), m.SyncStatus, m.UpdatedAt.UTC(),
		m.ID)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	if n == 0 {
		return nil, member.ErrNotFound
	}

	return r.Get(ctx, m.ID)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if n == 0 {
		return member.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (*member.Member, error) {
	var (
		m        member.Member
		metadata sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.DOB, &m.Age, &m.Gender, &m.Phone, &m.Address,
		&m.Baptized, &m.WaterBaptized, &m.HolyGhostBaptized, &m.PresidingElder, &m.Working, &m.Occupation,
		&m.MaritalStatus, &m.ChildrenCount, &m.Ministry, &m.JoinedDate, &m.Picture, &metadata,
		&m.SyncStatus, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &m.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of member %s: %w", m.ID, err)
		}
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}

func marshalMetadata(md map[string]any) ([]byte, error) {
	if md == nil {
		return nil, nil
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return b, nil
}
