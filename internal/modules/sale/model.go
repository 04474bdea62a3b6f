package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a referenced row does not exist for the store.
var ErrNotFound = errors.New("not found")

// StatusCompleted is the status counted by seller statistics.
const StatusCompleted = "Concluída"

// Sale is one recorded transaction of a store.
type Sale struct {
	ID              uuid.UUID   `json:"id"`
	StoreID         uuid.UUID   `json:"store_id"`
	CustomerID      *uuid.UUID  `json:"customer_id,omitempty"`
	TeamMemberID    *uuid.UUID  `json:"team_member_id,omitempty"`
	PaymentMethodID *uuid.UUID  `json:"payment_method_id,omitempty"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []*SaleItem `json:"sale_items"`
	Seller          *SellerInfo `json:"team_members,omitempty"`
}

// SaleItem is one product line of a sale. unit_price is the product's price
// at the moment the sale was created, not a live reference.
type SaleItem struct {
	ID        uuid.UUID `json:"id"`
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
}

// SellerInfo is the team member summary embedded in sale listings.
type SellerInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

// SellerStats aggregates completed sales per team member.
type SellerStats struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	TotalSales  float64   `json:"totalSales"`
	TotalAmount float64   `json:"totalAmount"`
	SalesCount  int       `json:"salesCount"`
}
