package team

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed team member repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO team_members (id, store_id, full_name, email, phone, role, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.StoreID, m.FullName, m.Email, m.Phone, m.Role, m.Status)
	return err
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID string) ([]*Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,store_id,full_name,email,phone,role,status,created_at
		FROM team_members WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.StoreID, &m.FullName, &m.Email, &m.Phone,
			&m.Role, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, storeID, memberID string, req UpdateMemberRequest) (*Member, error) {
	set := []string{}
	args := []interface{}{}
	n := 1
	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s=$%d", col, n))
		args = append(args, val)
		n++
	}
	if req.FullName != nil {
		add("full_name", *req.FullName)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Role != nil {
		add("role", *req.Role)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if len(set) == 0 {
		set = append(set, "full_name=full_name")
	}
	args = append(args, memberID, storeID)
	query := fmt.Sprintf(`
		UPDATE team_members SET %s WHERE id=$%d AND store_id=$%d
		RETURNING id,store_id,full_name,email,phone,role,status,created_at`,
		strings.Join(set, ", "), n, n+1)

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.StoreID,
		&m.FullName, &m.Email, &m.Phone, &m.Role, &m.Status, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, memberID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE id=$1 AND store_id=$2`, memberID, storeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
