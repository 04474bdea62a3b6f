package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a payment method does not exist.
var ErrNotFound = errors.New("Payment method not found")

// ErrUnauthorized is returned when a payment method belongs to another store.
var ErrUnauthorized = errors.New("Unauthorized")

// Method is a tenant-configured way of receiving payment, e.g.
// "Cartão de Crédito" paid in up to 12 installments.
type Method struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Name      string    `json:"name"`
	Codigo    string    `json:"codigo,omitempty"`
	Parcelas  string    `json:"parcelas"`
	CreatedAt time.Time `json:"created_at"`
}
