package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a configuration row does not exist for the
// given store.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
var ErrDuplicate = errors.New("already exists")

// ProductAttribute is a tenant-defined product dimension (e.g. "tamanho").
// Attributes flagged is_variation can be used for combination generation.
type ProductAttribute struct {
	ID          uuid.UUID          `json:"id"`
	StoreID     uuid.UUID          `json:"store_id"`
	Name        string             `json:"name"`
	Label       string             `json:"label"`
	IsVariation bool               `json:"is_variation"`
	IsRequired  bool               `json:"is_required"`
	Position    int                `json:"position"`
	Options     []*AttributeOption `json:"product_attribute_options"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// AttributeOption is one allowed value of a product attribute (e.g. "M").
type AttributeOption struct {
	ID          uuid.UUID `json:"id"`
	AttributeID uuid.UUID `json:"attribute_id"`
	Value       string    `json:"value"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductColumn is a tenant-defined display/edit column of the product table.
// field_name points at an actual product field and is immutable after create.
type ProductColumn struct {
	ID         uuid.UUID `json:"id"`
	StoreID    uuid.UUID `json:"store_id"`
	FieldName  string    `json:"field_name"`
	Label      string    `json:"label"`
	IsVisible  bool      `json:"is_visible"`
	IsEditable bool      `json:"is_editable"`
	ColumnType string    `json:"column_type"` // text, number, currency, date, textarea, select
	Width      string    `json:"width"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ColumnOption is a dropdown choice for a select-type product column.
type ColumnOption struct {
	ID        uuid.UUID `json:"id"`
	ColumnID  uuid.UUID `json:"column_id"`
	Value     string    `json:"value"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
