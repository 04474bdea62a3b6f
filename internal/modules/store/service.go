package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Service defines store provisioning logic. Stores are created explicitly
// and never deleted in-flow.
type Service interface {
	CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error)
	GetStore(ctx context.Context, id string) (*Store, error)
	ListStores(ctx context.Context) ([]*Store, error)
}

// CreateStoreRequest holds data for provisioning a store.
type CreateStoreRequest struct {
	Name        string          `json:"name"`
	OwnerUserID string          `json:"owner_user_id"`
	Metadata    json.RawMessage `json:"metadata"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error) {
	if len(req.Name) < 2 {
		return nil, fmt.Errorf("name must have at least 2 characters")
	}
	ownerID, err := uuid.Parse(req.OwnerUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner_user_id: %w", err)
	}
	store := &Store{
		ID:          uuid.New(),
		Name:        req.Name,
		OwnerUserID: ownerID,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *service) GetStore(ctx context.Context, id string) (*Store, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListStores(ctx context.Context) ([]*Store, error) {
	stores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []*Store{}
	}
	return stores, nil
}
