package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed user repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, full_name)
		VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.PasswordHash, u.FullName)
	return err
}

func scanUser(scan func(...interface{}) error) (*User, error) {
	u := &User{}
	var storeID sql.NullString
	err := scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &storeID,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if storeID.Valid {
		id, err := uuid.Parse(storeID.String)
		if err == nil {
			u.StoreID = &id
		}
	}
	return u, nil
}

const userColumns = `id,email,password_hash,full_name,store_id,created_at,updated_at`

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return u, err
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return u, err
}

func (r *postgresRepo) SetStore(ctx context.Context, userID string, storeID *string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET store_id=$1, updated_at=NOW() WHERE id=$2
		RETURNING `+userColumns, storeID, userID)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return u, err
}
