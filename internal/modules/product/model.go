package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a product or variation does not exist for the
// given store. Ownership failures use the same error so callers cannot probe
// other tenants' rows.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
var ErrDuplicate = errors.New("already exists")

// Product is a sellable item scoped to a store. The descriptive fields mirror
// the tenant-facing product sheet (brand, category hierarchy, tax codes).
type Product struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"store_id"`
	Codigo       string    `json:"codigo"`
	Name         string    `json:"name"`
	Marca        string    `json:"marca,omitempty"`
	Categoria    string    `json:"categoria,omitempty"`
	Subcategoria string    `json:"subcategoria,omitempty"`
	Grupo        string    `json:"grupo,omitempty"`
	Subgrupo     string    `json:"subgrupo,omitempty"`
	Departamento string    `json:"departamento,omitempty"`
	Secao        string    `json:"secao,omitempty"`
	Estacao      string    `json:"estacao,omitempty"`
	Colecao      string    `json:"colecao,omitempty"`
	Descricao    string    `json:"descricao,omitempty"`
	Observacao   string    `json:"observacao,omitempty"`
	Fabricante   string    `json:"fabricante,omitempty"`
	Fornecedor   string    `json:"fornecedor,omitempty"`
	NCM          string    `json:"ncm,omitempty"`
	CEST         string    `json:"cest,omitempty"`
	Custo        float64   `json:"custo"`
	Preco1       float64   `json:"preco1"`
	Preco2       float64   `json:"preco2"`
	Preco3       float64   `json:"preco3"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`

	// Variations links this row to the attribute-option values it was
	// generated from. Always non-nil in responses.
	Variations []*Variation `json:"product_variations"`
}

// Variation links a product to one configured attribute-option value.
type Variation struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"product_id"`
	AttributeOptionID uuid.UUID `json:"attribute_option_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// StoreAttributeOption is a configured attribute option joined with its
// owning attribute, used to resolve typed variation values to option ids.
type StoreAttributeOption struct {
	ID          uuid.UUID
	AttributeID uuid.UUID
	Value       string
}
