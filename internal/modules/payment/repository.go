package payment

import "context"

// Repository defines payment method data storage.
type Repository interface {
	Create(ctx context.Context, m *Method) error
	GetByID(ctx context.Context, id string) (*Method, error)
	ListByStore(ctx context.Context, storeID string) ([]*Method, error)
	Delete(ctx context.Context, id string) error
}
