package store

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed store repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Store) error {
	var metadata interface{}
	if s.Metadata != nil {
		metadata = s.Metadata
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stores (id, name, owner_user_id, metadata)
		VALUES ($1,$2,$3,$4)`,
		s.ID, s.Name, s.OwnerUserID, metadata)
	return err
}

func scanStore(scan func(...interface{}) error) (*Store, error) {
	s := &Store{}
	var metadata []byte
	if err := scan(&s.ID, &s.Name, &s.OwnerUserID, &metadata, &s.CreatedAt); err != nil {
		return nil, err
	}
	if metadata != nil {
		s.Metadata = json.RawMessage(metadata)
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Store, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,name,owner_user_id,metadata,created_at FROM stores WHERE id=$1`, id)
	s, err := scanStore(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,owner_user_id,metadata,created_at
		FROM stores ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stores []*Store
	for rows.Next() {
		s, err := scanStore(rows.Scan)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}
