package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage for product attribute and column configuration.
type Repository interface {
	// Attributes
	CreateAttribute(ctx context.Context, a *ProductAttribute) error
	CreateAttributeOptions(ctx context.Context, opts []*AttributeOption) error
	ListAttributes(ctx context.Context, storeID string) ([]*ProductAttribute, error)
	ListAttributeOptions(ctx context.Context, attributeIDs []uuid.UUID) ([]*AttributeOption, error)
	UpdateAttribute(ctx context.Context, storeID, attributeID string, fields UpdateAttributeRequest) (*ProductAttribute, error)
	DeleteAttribute(ctx context.Context, storeID, attributeID string) error

	// Columns
	CreateColumn(ctx context.Context, c *ProductColumn) error
	ListColumns(ctx context.Context, storeID string) ([]*ProductColumn, error)
	UpdateColumn(ctx context.Context, storeID, columnID string, fields UpdateColumnRequest) (*ProductColumn, error)
	DeleteColumn(ctx context.Context, storeID, columnID string) error

	// Column options
	CreateColumnOption(ctx context.Context, o *ColumnOption) error
	ListColumnOptions(ctx context.Context, columnID string) ([]*ColumnOption, error)
	ListColumnOptionsByColumns(ctx context.Context, columnIDs []uuid.UUID) ([]*ColumnOption, error)
	MaxColumnOptionPosition(ctx context.Context, columnID string) (int, bool, error)
	UpdateColumnOption(ctx context.Context, optionID string, value *string, position *int) (*ColumnOption, error)
	DeleteColumnOption(ctx context.Context, optionID string) error
}
