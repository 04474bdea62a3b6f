package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines product and variation data storage.
type Repository interface {
	// InsertProducts inserts all rows in a single statement; either every
	// row is written or none is.
	InsertProducts(ctx context.Context, products []*Product) error
	ListByStore(ctx context.Context, storeID string) ([]*Product, error)
	GetByID(ctx context.Context, storeID, productID string) (*Product, error)
	// UpdateFields writes the given column/value pairs. The caller is
	// responsible for only passing allow-listed column names.
	UpdateFields(ctx context.Context, storeID, productID string, fields map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, storeID, productID string) error

	ListProductIDs(ctx context.Context, storeID string) ([]uuid.UUID, error)
	ListAttributeOptionsByStore(ctx context.Context, storeID string) ([]*StoreAttributeOption, error)
	InsertVariations(ctx context.Context, variations []*Variation) error
	ListVariationsByProducts(ctx context.Context, productIDs []uuid.UUID) ([]*Variation, error)
	GetVariation(ctx context.Context, variationID string) (*Variation, error)
	DeleteVariation(ctx context.Context, variationID string) error
}
