package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"churchdata/internal/domain/member"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

const memberColumns = `id::text, first_name, last_name, dob, age, gender, phone, address,
	baptized, water_baptized, holy_ghost_baptized, presiding_elder, working, occupation,
	marital_status, children_count, ministry, joined_date, picture, metadata,
	sync_status, created_at, updated_at`

type MemberRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMemberRepository(pool *pgxpool.Pool, log *slog.Logger) *MemberRepository {
	return &MemberRepository{
		pool: pool,
		log:  log.With("component", "member_repository"),
	}
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	rows, err := r.pool.Query(ctx,
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
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

	const query = `
		INSERT INTO members (id, first_name, last_name, dob, age, gender, phone, address,
			baptized, water_baptized, holy_ghost_baptized, presiding_elder, working, occupation,
			marital_status, children_count, ministry, joined_date, picture, metadata,
			sync_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + memberColumns

	row := r.pool.QueryRow(ctx, query,
		m.ID, m.FirstName, m.LastName, m.DOB, m.Age, m.Gender, m.Phone, m.Address,
		m.Baptized, m.WaterBaptized, m.HolyGhostBaptized, m.PresidingElder, m.Working, m.Occupation,
		m.MaritalStatus, m.ChildrenCount, m.Ministry, m.JoinedDate, m.Picture, metadata,
		m.SyncStatus, m.CreatedAt, m.UpdatedAt)

	created, err := scanMember(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, member.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return created, nil
}

// Update перезаписывает все поля строки, кроме id и created_at
func (r *MemberRepository) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	metadata, err := marshalMetadata(m.Metadata)
	if err != nil {
		return nil, err
	}

	const query = `
		UPDATE members SET
			first_name = $2, last_name = $3, dob = $4, age = $5, gender = $6, phone = $7,
			address = $8, baptized = $9, water_baptized = $10, holy_ghost_baptized = $11,
			presiding_elder = $12, working = $13, occupation = $14, marital_status = $15,
			children_count = $16, ministry = $17, joined_date = $18, picture = $19,
			metadata = $20, sync_status = $21, updated_at = $22
		WHERE id = $1
		RETURNING ` + memberColumns

	row := r.pool.QueryRow(ctx, query,
		m.ID, m.FirstName, m.LastName, m.DOB, m.Age, m.Gender, m.Phone, m.Address,
		m.Baptized, m.WaterBaptized, m.HolyGhostBaptized, m.PresidingElder, m.Working, m.Occupation,
		m.MaritalStatus, m.ChildrenCount, m.Ministry, m.JoinedDate, m.Picture, metadata,
		m.SyncStatus, m.UpdatedAt)

	updated, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrNotFound
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return updated, nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (*member.Member, error) {
	var (
		m        member.Member
		metadata []byte
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
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
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
