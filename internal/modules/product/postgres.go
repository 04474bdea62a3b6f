package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id,store_id,codigo,name,marca,categoria,subcategoria,grupo,subgrupo,
	departamento,secao,estacao,colecao,descricao,observacao,fabricante,fornecedor,
	ncm,cest,custo,preco1,preco2,preco3,stock,created_at`

const productInsertColumns = `id,store_id,codigo,name,marca,categoria,subcategoria,grupo,subgrupo,
	departamento,secao,estacao,colecao,descricao,observacao,fabricante,fornecedor,
	ncm,cest,custo,preco1,preco2,preco3,stock`

func productArgs(p *Product) []interface{} {
	return []interface{}{
		p.ID, p.StoreID, p.Codigo, p.Name, p.Marca, p.Categoria, p.Subcategoria,
		p.Grupo, p.Subgrupo, p.Departamento, p.Secao, p.Estacao, p.Colecao,
		p.Descricao, p.Observacao, p.Fabricante, p.Fornecedor, p.NCM, p.CEST,
		p.Custo, p.Preco1, p.Preco2, p.Preco3, p.Stock,
	}
}

func (r *postgresRepo) InsertProducts(ctx context.Context, products []*Product) error {
	if len(products) == 0 {
		return nil
	}
	const cols = 24
	placeholders := make([]string, len(products))
	args := make([]interface{}, 0, len(products)*cols)
	for i, p := range products {
		ph := make([]string, cols)
		for j := 0; j < cols; j++ {
			ph[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		placeholders[i] = "(" + strings.Join(ph, ",") + ")"
		args = append(args, productArgs(p)...)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (`+productInsertColumns+`) VALUES `+strings.Join(placeholders, ","),
		args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Detail)
	}
	return err
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanProduct(row rowScanner) (*Product, error) {
	p := &Product{Variations: []*Variation{}}
	err := row.Scan(&p.ID, &p.StoreID, &p.Codigo, &p.Name, &p.Marca, &p.Categoria,
		&p.Subcategoria, &p.Grupo, &p.Subgrupo, &p.Departamento, &p.Secao,
		&p.Estacao, &p.Colecao, &p.Descricao, &p.Observacao, &p.Fabricante,
		&p.Fornecedor, &p.NCM, &p.CEST, &p.Custo, &p.Preco1, &p.Preco2,
		&p.Preco3, &p.Stock, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, productID string) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE id=$1 AND store_id=$2`, productID, storeID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) UpdateFields(ctx context.Context, storeID, productID string, fields map[string]interface{}) (*Product, error) {
	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+2)
	n := 1
	for col, val := range fields {
		set = append(set, fmt.Sprintf("%s=$%d", col, n))
		args = append(args, val)
		n++
	}
	args = append(args, productID, storeID)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id=$%d AND store_id=$%d RETURNING `+productColumns,
		strings.Join(set, ", "), n, n+1)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Detail)
	}
	return p, err
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id=$1 AND store_id=$2`, productID, storeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListProductIDs(ctx context.Context, storeID string) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM products WHERE store_id=$1`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresRepo) ListAttributeOptionsByStore(ctx context.Context, storeID string) ([]*StoreAttributeOption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.attribute_id, o.value
		FROM product_attribute_options o
		JOIN product_attributes a ON a.id = o.attribute_id
		WHERE a.store_id=$1`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var opts []*StoreAttributeOption
	for rows.Next() {
		o := &StoreAttributeOption{}
		if err := rows.Scan(&o.ID, &o.AttributeID, &o.Value); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (r *postgresRepo) InsertVariations(ctx context.Context, variations []*Variation) error {
	if len(variations) == 0 {
		return nil
	}
	placeholders := make([]string, len(variations))
	args := make([]interface{}, 0, len(variations)*3)
	for i, v := range variations {
		placeholders[i] = fmt.Sprintf("($%d,$%d,$%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, v.ID, v.ProductID, v.AttributeOptionID)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_variations (id, product_id, attribute_option_id)
		VALUES `+strings.Join(placeholders, ","), args...)
	return err
}

func (r *postgresRepo) ListVariationsByProducts(ctx context.Context, productIDs []uuid.UUID) ([]*Variation, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,product_id,attribute_option_id,created_at
		FROM product_variations WHERE product_id = ANY($1) ORDER BY created_at`,
		pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var variations []*Variation
	for rows.Next() {
		v := &Variation{}
		if err := rows.Scan(&v.ID, &v.ProductID, &v.AttributeOptionID, &v.CreatedAt); err != nil {
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

func (r *postgresRepo) GetVariation(ctx context.Context, variationID string) (*Variation, error) {
	v := &Variation{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id,product_id,attribute_option_id,created_at
		FROM product_variations WHERE id=$1`, variationID).
		Scan(&v.ID, &v.ProductID, &v.AttributeOptionID, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *postgresRepo) DeleteVariation(ctx context.Context, variationID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_variations WHERE id=$1`, variationID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
