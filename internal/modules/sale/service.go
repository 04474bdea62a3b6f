package sale

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Service defines sale business logic.
type Service interface {
	CreateSale(ctx context.Context, storeID string, req CreateSaleRequest) (*Sale, error)
	ListSales(ctx context.Context, storeID, from, to string) ([]*Sale, error)
	SellerStats(ctx context.Context, storeID string) ([]*SellerStats, error)
}

// CreateSaleRequest holds data for recording a sale. When items are present
// the total is computed from captured product prices; otherwise the caller's
// total is used (quick sales without line items).
type CreateSaleRequest struct {
	CustomerID      string            `json:"customer_id"`
	TeamMemberID    string            `json:"team_member_id"`
	PaymentMethodID string            `json:"payment_method_id"`
	Total           float64           `json:"total"`
	Status          string            `json:"status"`
	Items           []SaleItemRequest `json:"items"`
}

// SaleItemRequest is one requested product line.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateSale(ctx context.Context, storeID string, req CreateSaleRequest) (*Sale, error) {
	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store_id: %w", err)
	}

	sale := &Sale{
		ID:      uuid.New(),
		StoreID: sid,
		Status:  req.Status,
		Items:   []*SaleItem{},
	}
	if sale.Status == "" {
		sale.Status = StatusCompleted
	}
	if sale.CustomerID, err = parseOptionalID(req.CustomerID, "customer_id"); err != nil {
		return nil, err
	}
	if sale.TeamMemberID, err = parseOptionalID(req.TeamMemberID, "team_member_id"); err != nil {
		return nil, err
	}
	if sale.PaymentMethodID, err = parseOptionalID(req.PaymentMethodID, "payment_method_id"); err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		if req.Total <= 0 {
			return nil, fmt.Errorf("Valor deve ser maior que 0")
		}
		sale.Total = req.Total
	} else {
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return nil, fmt.Errorf("quantity must be greater than zero")
			}
			price, err := s.repo.GetProductPrice(ctx, storeID, item.ProductID)
			if err != nil {
				return nil, err
			}
			pid, err := uuid.Parse(item.ProductID)
			if err != nil {
				return nil, fmt.Errorf("invalid product_id: %w", err)
			}
			subtotal := price * float64(item.Quantity)
			sale.Items = append(sale.Items, &SaleItem{
				ID:        uuid.New(),
				SaleID:    sale.ID,
				ProductID: pid,
				Quantity:  item.Quantity,
				UnitPrice: price,
				Subtotal:  subtotal,
			})
			sale.Total += subtotal
		}
	}

	if err := s.repo.CreateSale(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return &id, nil
}

func (s *service) ListSales(ctx context.Context, storeID, from, to string) ([]*Sale, error) {
	sales, err := s.repo.ListByStore(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []*Sale{}
	}
	return sales, nil
}

// SellerStats groups the store's completed sales by team member, summing
// amounts and counting sales, sorted by total descending.
func (s *service) SellerStats(ctx context.Context, storeID string) ([]*SellerStats, error) {
	sales, err := s.repo.ListCompleted(ctx, storeID)
	if err != nil {
		return nil, err
	}
	byMember := make(map[uuid.UUID]*SellerStats)
	for _, sl := range sales {
		if sl.TeamMemberID == nil || sl.Seller == nil {
			continue
		}
		stats, ok := byMember[*sl.TeamMemberID]
		if !ok {
			stats = &SellerStats{
				ID:   *sl.TeamMemberID,
				Name: sl.Seller.FullName,
				Role: sl.Seller.Role,
			}
			byMember[*sl.TeamMemberID] = stats
		}
		stats.TotalAmount += sl.Total
		stats.SalesCount++
		stats.TotalSales = stats.TotalAmount
	}

	out := make([]*SellerStats, 0, len(byMember))
	for _, stats := range byMember {
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalSales > out[j].TotalSales })
	return out, nil
}
