package sale

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed sale repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateSale(ctx context.Context, s *Sale) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sales (id, store_id, customer_id, team_member_id, payment_method_id, total, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.StoreID, s.CustomerID, s.TeamMemberID, s.PaymentMethodID, s.Total, s.Status)
	if err != nil {
		return err
	}
	for _, item := range s.Items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return err
		}
	}
	return nil
}

const saleColumns = `s.id, s.store_id, s.customer_id, s.team_member_id, s.payment_method_id,
	s.total, s.status, s.created_at, t.id, t.full_name, t.role`

const saleJoin = `FROM sales s LEFT JOIN team_members t ON t.id = s.team_member_id`

func scanSale(scan func(...interface{}) error) (*Sale, error) {
	s := &Sale{Items: []*SaleItem{}}
	var customerID, teamMemberID, paymentMethodID sql.NullString
	var sellerID, sellerName, sellerRole sql.NullString
	err := scan(&s.ID, &s.StoreID, &customerID, &teamMemberID, &paymentMethodID,
		&s.Total, &s.Status, &s.CreatedAt, &sellerID, &sellerName, &sellerRole)
	if err != nil {
		return nil, err
	}
	s.CustomerID = nullUUID(customerID)
	s.TeamMemberID = nullUUID(teamMemberID)
	s.PaymentMethodID = nullUUID(paymentMethodID)
	if sellerID.Valid {
		id, _ := uuid.Parse(sellerID.String)
		s.Seller = &SellerInfo{ID: id, FullName: sellerName.String, Role: sellerRole.String}
	}
	return s, nil
}

func nullUUID(ns sql.NullString) *uuid.UUID {
	if !ns.Valid {
		return nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil
	}
	return &id
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID, from, to string) ([]*Sale, error) {
	query := `SELECT ` + saleColumns + ` ` + saleJoin + ` WHERE s.store_id=$1`
	args := []interface{}{storeID}
	n := 2
	if from != "" {
		query += fmt.Sprintf(` AND s.created_at >= $%d`, n)
		args = append(args, from)
		n++
	}
	if to != "" {
		query += fmt.Sprintf(` AND s.created_at <= $%d`, n)
		args = append(args, to)
		n++
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *postgresRepo) ListCompleted(ctx context.Context, storeID string) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+saleColumns+` `+saleJoin+`
		WHERE s.store_id=$1 AND s.status=$2`, storeID, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *postgresRepo) collect(ctx context.Context, rows *sql.Rows) ([]*Sale, error) {
	var sales []*Sale
	for rows.Next() {
		s, err := scanSale(rows.Scan)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range sales {
		items, err := r.listItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return sales, nil
}

func (r *postgresRepo) listItems(ctx context.Context, saleID uuid.UUID) ([]*SaleItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,sale_id,product_id,quantity,unit_price,subtotal
		FROM sale_items WHERE sale_id=$1`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*SaleItem{}
	for rows.Next() {
		item := &SaleItem{}
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) GetProductPrice(ctx context.Context, storeID, productID string) (float64, error) {
	var price float64
	err := r.db.QueryRowContext(ctx,
		`SELECT preco1 FROM products WHERE id=$1 AND store_id=$2`, productID, storeID).
		Scan(&price)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("product %w", ErrNotFound)
	}
	return price, err
}
