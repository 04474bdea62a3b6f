package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed customer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, store_id, full_name, email, phone)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.StoreID, c.FullName, c.Email, c.Phone)
	return err
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID string) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,store_id,full_name,email,phone,created_at
		FROM customers WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var customers []*Customer
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, storeID, customerID string, req UpdateCustomerRequest) (*Customer, error) {
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
	if len(set) == 0 {
		set = append(set, "full_name=full_name")
	}
	args = append(args, customerID, storeID)
	query := fmt.Sprintf(`
		UPDATE customers SET %s WHERE id=$%d AND store_id=$%d
		RETURNING id,store_id,full_name,email,phone,created_at`,
		strings.Join(set, ", "), n, n+1)

	c := &Customer{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.StoreID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, customerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM customers WHERE id=$1 AND store_id=$2`, customerID, storeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
