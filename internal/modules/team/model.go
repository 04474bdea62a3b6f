package team

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a team member does not exist for the store.
var ErrNotFound = errors.New("team member not found")

// Member is someone who works at a store and can be credited with sales.
type Member struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
