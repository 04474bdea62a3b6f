package sale

import "context"

// Repository defines sale data storage.
type Repository interface {
	// CreateSale inserts the sale row and its items.
	CreateSale(ctx context.Context, s *Sale) error
	// ListByStore returns sales newest first, seller info embedded, with an
	// optional created_at range (RFC 3339 strings, empty means unbounded).
	ListByStore(ctx context.Context, storeID, from, to string) ([]*Sale, error)
	// ListCompleted returns the store's completed sales with seller info,
	// for per-seller aggregation.
	ListCompleted(ctx context.Context, storeID string) ([]*Sale, error)
	// GetProductPrice returns the product's current preco1, used to capture
	// unit prices at sale-creation time.
	GetProductPrice(ctx context.Context, storeID, productID string) (float64, error)
}
