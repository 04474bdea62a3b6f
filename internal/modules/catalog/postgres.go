package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func wrapPQ(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Detail)
	}
	return err
}

// ── attributes ────────────────────────────────────────────────────────────────

func (r *postgresRepo) CreateAttribute(ctx context.Context, a *ProductAttribute) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_attributes
		  (id, store_id, name, label, is_variation, is_required, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.StoreID, a.Name, a.Label, a.IsVariation, a.IsRequired, a.Position)
	return wrapPQ(err)
}

func (r *postgresRepo) CreateAttributeOptions(ctx context.Context, opts []*AttributeOption) error {
	if len(opts) == 0 {
		return nil
	}
	placeholders := make([]string, len(opts))
	args := make([]interface{}, 0, len(opts)*4)
	for i, o := range opts {
		placeholders[i] = fmt.Sprintf("($%d,$%d,$%d,$%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, o.ID, o.AttributeID, o.Value, o.Position)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_attribute_options (id, attribute_id, value, position)
		VALUES `+strings.Join(placeholders, ","), args...)
	return wrapPQ(err)
}

func (r *postgresRepo) ListAttributes(ctx context.Context, storeID string) ([]*ProductAttribute, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,store_id,name,label,is_variation,is_required,position,created_at,updated_at
		FROM product_attributes WHERE store_id=$1 ORDER BY position`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var attrs []*ProductAttribute
	for rows.Next() {
		a := &ProductAttribute{}
		if err := rows.Scan(&a.ID, &a.StoreID, &a.Name, &a.Label,
			&a.IsVariation, &a.IsRequired, &a.Position, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}

func (r *postgresRepo) ListAttributeOptions(ctx context.Context, attributeIDs []uuid.UUID) ([]*AttributeOption, error) {
	if len(attributeIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,attribute_id,value,position,created_at
		FROM product_attribute_options WHERE attribute_id = ANY($1) ORDER BY position`,
		pq.Array(attributeIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var opts []*AttributeOption
	for rows.Next() {
		o := &AttributeOption{}
		if err := rows.Scan(&o.ID, &o.AttributeID, &o.Value, &o.Position, &o.CreatedAt); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (r *postgresRepo) UpdateAttribute(ctx context.Context, storeID, attributeID string, fields UpdateAttributeRequest) (*ProductAttribute, error) {
	set := []string{"updated_at=NOW()"}
	args := []interface{}{}
	n := 1
	if fields.Name != nil {
		set = append(set, fmt.Sprintf("name=$%d", n))
		args = append(args, *fields.Name)
		n++
	}
	if fields.Label != nil {
		set = append(set, fmt.Sprintf("label=$%d", n))
		args = append(args, *fields.Label)
		n++
	}
	if fields.IsVariation != nil {
		set = append(set, fmt.Sprintf("is_variation=$%d", n))
		args = append(args, *fields.IsVariation)
		n++
	}
	if fields.IsRequired != nil {
		set = append(set, fmt.Sprintf("is_required=$%d", n))
		args = append(args, *fields.IsRequired)
		n++
	}
	args = append(args, attributeID, storeID)
	query := fmt.Sprintf(`
		UPDATE product_attributes SET %s WHERE id=$%d AND store_id=$%d
		RETURNING id,store_id,name,label,is_variation,is_required,position,created_at,updated_at`,
		strings.Join(set, ", "), n, n+1)

	a := &ProductAttribute{Options: []*AttributeOption{}}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.StoreID, &a.Name,
		&a.Label, &a.IsVariation, &a.IsRequired, &a.Position, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *postgresRepo) DeleteAttribute(ctx context.Context, storeID, attributeID string) error {
	// Options go first; the schema never declared an FK cascade.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM product_attribute_options WHERE attribute_id IN
		  (SELECT id FROM product_attributes WHERE id=$1 AND store_id=$2)`, attributeID, storeID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM product_attributes WHERE id=$1 AND store_id=$2`, attributeID, storeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ── columns ───────────────────────────────────────────────────────────────────

func (r *postgresRepo) CreateColumn(ctx context.Context, c *ProductColumn) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_columns
		  (id, store_id, field_name, label, is_visible, is_editable, column_type, width, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.StoreID, c.FieldName, c.Label, c.IsVisible, c.IsEditable,
		c.ColumnType, c.Width, c.Position)
	return wrapPQ(err)
}

func (r *postgresRepo) ListColumns(ctx context.Context, storeID string) ([]*ProductColumn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,store_id,field_name,label,is_visible,is_editable,column_type,width,position,created_at,updated_at
		FROM product_columns WHERE store_id=$1 ORDER BY position`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []*ProductColumn
	for rows.Next() {
		c := &ProductColumn{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.FieldName, &c.Label, &c.IsVisible,
			&c.IsEditable, &c.ColumnType, &c.Width, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

func (r *postgresRepo) UpdateColumn(ctx context.Context, storeID, columnID string, fields UpdateColumnRequest) (*ProductColumn, error) {
	set := []string{"updated_at=NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s=$%d", col, n))
		args = append(args, val)
		n++
	}
	if fields.Label != nil {
		add("label", *fields.Label)
	}
	if fields.IsVisible != nil {
		add("is_visible", *fields.IsVisible)
	}
	if fields.IsEditable != nil {
		add("is_editable", *fields.IsEditable)
	}
	if fields.ColumnType != nil {
		add("column_type", *fields.ColumnType)
	}
	if fields.Width != nil {
		add("width", *fields.Width)
	}
	if fields.Position != nil {
		add("position", *fields.Position)
	}
	args = append(args, columnID, storeID)
	query := fmt.Sprintf(`
		UPDATE product_columns SET %s WHERE id=$%d AND store_id=$%d
		RETURNING id,store_id,field_name,label,is_visible,is_editable,column_type,width,position,created_at,updated_at`,
		strings.Join(set, ", "), n, n+1)

	c := &ProductColumn{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.StoreID, &c.FieldName,
		&c.Label, &c.IsVisible, &c.IsEditable, &c.ColumnType, &c.Width, &c.Position,
		&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) DeleteColumn(ctx context.Context, storeID, columnID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM product_column_options WHERE column_id IN
		  (SELECT id FROM product_columns WHERE id=$1 AND store_id=$2)`, columnID, storeID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM product_columns WHERE id=$1 AND store_id=$2`, columnID, storeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ── column options ────────────────────────────────────────────────────────────

func (r *postgresRepo) CreateColumnOption(ctx context.Context, o *ColumnOption) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_column_options (id, column_id, value, position)
		VALUES ($1,$2,$3,$4)`,
		o.ID, o.ColumnID, o.Value, o.Position)
	return wrapPQ(err)
}

func (r *postgresRepo) ListColumnOptions(ctx context.Context, columnID string) ([]*ColumnOption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,column_id,value,position,created_at
		FROM product_column_options WHERE column_id=$1 ORDER BY position`, columnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanColumnOptions(rows)
}

func (r *postgresRepo) ListColumnOptionsByColumns(ctx context.Context, columnIDs []uuid.UUID) ([]*ColumnOption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,column_id,value,position,created_at
		FROM product_column_options WHERE column_id = ANY($1) ORDER BY position`,
		pq.Array(columnIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanColumnOptions(rows)
}

func scanColumnOptions(rows *sql.Rows) ([]*ColumnOption, error) {
	var opts []*ColumnOption
	for rows.Next() {
		o := &ColumnOption{}
		if err := rows.Scan(&o.ID, &o.ColumnID, &o.Value, &o.Position, &o.CreatedAt); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (r *postgresRepo) MaxColumnOptionPosition(ctx context.Context, columnID string) (int, bool, error) {
	var pos int
	err := r.db.QueryRowContext(ctx, `
		SELECT position FROM product_column_options
		WHERE column_id=$1 ORDER BY position DESC LIMIT 1`, columnID).Scan(&pos)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return pos, true, nil
}

func (r *postgresRepo) UpdateColumnOption(ctx context.Context, optionID string, value *string, position *int) (*ColumnOption, error) {
	set := []string{}
	args := []interface{}{}
	n := 1
	if value != nil {
		set = append(set, fmt.Sprintf("value=$%d", n))
		args = append(args, *value)
		n++
	}
	if position != nil {
		set = append(set, fmt.Sprintf("position=$%d", n))
		args = append(args, *position)
		n++
	}
	if len(set) == 0 {
		set = append(set, "value=value")
	}
	args = append(args, optionID)
	query := fmt.Sprintf(`
		UPDATE product_column_options SET %s WHERE id=$%d
		RETURNING id,column_id,value,position,created_at`, strings.Join(set, ", "), n)

	o := &ColumnOption{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.ColumnID, &o.Value, &o.Position, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) DeleteColumnOption(ctx context.Context, optionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_column_options WHERE id=$1`, optionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
