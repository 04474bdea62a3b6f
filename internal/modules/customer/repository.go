package customer

import "context"

// Repository defines customer data storage.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	ListByStore(ctx context.Context, storeID string) ([]*Customer, error)
	Update(ctx context.Context, storeID, customerID string, req UpdateCustomerRequest) (*Customer, error)
	Delete(ctx context.Context, storeID, customerID string) error
}
