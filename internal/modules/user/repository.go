package user

import "context"

// Repository defines user data storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetStore binds the user to a store; nil clears the binding.
	SetStore(ctx context.Context, userID string, storeID *string) (*User, error)
}
