package payment

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Service defines payment method business logic.
type Service interface {
	ListMethods(ctx context.Context, storeID string) ([]*Method, error)
	CreateMethod(ctx context.Context, storeID string, req CreateMethodRequest) (*Method, error)
	// DeleteMethod verifies the method belongs to the store before deleting.
	DeleteMethod(ctx context.Context, storeID, methodID string) error
}

// CreateMethodRequest holds data for creating a payment method.
type CreateMethodRequest struct {
	Name     string `json:"name"`
	Codigo   string `json:"codigo"`
	Parcelas string `json:"parcelas"`
}

var codigoPattern = regexp.MustCompile(`^\d{1,3}$`)

var validParcelas = map[string]bool{
	"À Vista": true, "2x": true, "3x": true, "4x": true, "5x": true,
	"6x": true, "7x": true, "8x": true, "9x": true, "10x": true,
	"11x": true, "12x": true,
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListMethods(ctx context.Context, storeID string) ([]*Method, error) {
	methods, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []*Method{}
	}
	return methods, nil
}

func (s *service) CreateMethod(ctx context.Context, storeID string, req CreateMethodRequest) (*Method, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("Insira o nome do Método de Pagamento")
	}
	if req.Codigo != "" && !codigoPattern.MatchString(req.Codigo) {
		return nil, fmt.Errorf("Código deve ter no máximo 3 números")
	}
	if req.Parcelas != "" && !validParcelas[req.Parcelas] {
		return nil, fmt.Errorf("Parcela inválida")
	}

	m := &Method{
		ID:       uuid.New(),
		StoreID:  sid,
		Name:     name,
		Codigo:   req.Codigo,
		Parcelas: req.Parcelas,
	}
	if m.Parcelas == "" {
		m.Parcelas = "À Vista"
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteMethod(ctx context.Context, storeID, methodID string) error {
	m, err := s.repo.GetByID(ctx, methodID)
	if err != nil {
		return err
	}
	if m.StoreID.String() != storeID {
		return ErrUnauthorized
	}
	return s.repo.Delete(ctx, methodID)
}
