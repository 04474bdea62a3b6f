package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines team member business logic.
type Service interface {
	ListMembers(ctx context.Context, storeID string) ([]*Member, error)
	CreateMember(ctx context.Context, storeID string, req CreateMemberRequest) (*Member, error)
	UpdateMember(ctx context.Context, storeID, memberID string, req UpdateMemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, storeID, memberID string) error
}

// CreateMemberRequest holds data for adding a team member.
type CreateMemberRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateMemberRequest holds the mutable team member fields.
type UpdateMemberRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListMembers(ctx context.Context, storeID string) ([]*Member, error) {
	members, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*Member{}
	}
	return members, nil
}

func (s *service) CreateMember(ctx context.Context, storeID string, req CreateMemberRequest) (*Member, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	m := &Member{
		ID:       uuid.New(),
		StoreID:  sid,
		FullName: strings.TrimSpace(req.FullName),
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   req.Status,
	}
	if m.Role == "" {
		m.Role = "Vendedor"
	}
	if m.Status == "" {
		m.Status = "Ativo"
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateMember(ctx context.Context, storeID, memberID string, req UpdateMemberRequest) (*Member, error) {
	return s.repo.Update(ctx, storeID, memberID, req)
}

func (s *service) DeleteMember(ctx context.Context, storeID, memberID string) error {
	return s.repo.Delete(ctx, storeID, memberID)
}
