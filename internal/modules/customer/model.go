package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a customer does not exist for the given store.
var ErrNotFound = errors.New("customer not found")

// Customer is a buyer registered to a store.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
