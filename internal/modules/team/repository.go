package team

import "context"

// Repository defines team member data storage.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	ListByStore(ctx context.Context, storeID string) ([]*Member, error)
	Update(ctx context.Context, storeID, memberID string, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, storeID, memberID string) error
}
