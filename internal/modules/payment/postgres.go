package payment

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed payment method repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Method) error {
	var codigo interface{}
	if m.Codigo != "" {
		codigo = m.Codigo
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payment_methods (id, store_id, name, codigo, parcelas)
		VALUES ($1,$2,$3,$4,$5)`,
		m.ID, m.StoreID, m.Name, codigo, m.Parcelas)
	return err
}

func scanMethod(scan func(...interface{}) error) (*Method, error) {
	m := &Method{}
	var codigo sql.NullString
	if err := scan(&m.ID, &m.StoreID, &m.Name, &codigo, &m.Parcelas, &m.CreatedAt); err != nil {
		return nil, err
	}
	if codigo.Valid {
		m.Codigo = codigo.String
	}
	return m, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Method, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,store_id,name,codigo,parcelas,created_at
		FROM payment_methods WHERE id=$1`, id)
	m, err := scanMethod(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID string) ([]*Method, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,store_id,name,codigo,parcelas,created_at
		FROM payment_methods WHERE store_id=$1 ORDER BY name`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var methods []*Method
	for rows.Next() {
		m, err := scanMethod(rows.Scan)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
