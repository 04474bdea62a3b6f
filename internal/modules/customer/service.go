package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines customer business logic.
type Service interface {
	ListCustomers(ctx context.Context, storeID string) ([]*Customer, error)
	CreateCustomer(ctx context.Context, storeID string, req CreateCustomerRequest) (*Customer, error)
	UpdateCustomer(ctx context.Context, storeID, customerID string, req UpdateCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, storeID, customerID string) error
}

// CreateCustomerRequest holds data for registering a customer.
type CreateCustomerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateCustomerRequest holds the mutable customer fields.
type UpdateCustomerRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListCustomers(ctx context.Context, storeID string) ([]*Customer, error) {
	customers, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*Customer{}
	}
	return customers, nil
}

func (s *service) CreateCustomer(ctx context.Context, storeID string, req CreateCustomerRequest) (*Customer, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	c := &Customer{
		ID:       uuid.New(),
		StoreID:  sid,
		FullName: strings.TrimSpace(req.FullName),
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCustomer(ctx context.Context, storeID, customerID string, req UpdateCustomerRequest) (*Customer, error) {
	return s.repo.Update(ctx, storeID, customerID, req)
}

func (s *service) DeleteCustomer(ctx context.Context, storeID, customerID string) error {
	return s.repo.Delete(ctx, storeID, customerID)
}
