package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a store does not exist.
var ErrNotFound = errors.New("store not found")

// Store is a tenant: an isolated retail business unit. Every other entity in
// the system is scoped by a store id.
type Store struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	OwnerUserID uuid.UUID       `json:"owner_user_id"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
