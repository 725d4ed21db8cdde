package user

import (
	"context"
)

// Repository defines the interface for user persistence
// This is defined in the domain layer, but implemented in infrastructure
type Repository interface {
	// Save persists a user (create or update)
	Save(ctx context.Context, user *User) error

	// FindByID retrieves a user by their ID
	FindByID(ctx context.Context, id UserID) (*User, error)

	// FindByExternalID retrieves a user by their identity provider subject
	FindByExternalID(ctx context.Context, externalID ExternalID) (*User, error)

	// ExistsByEmail checks if a user with the given email exists
	ExistsByEmail(ctx context.Context, email Email) (bool, error)

	// Delete removes a user from persistence
	Delete(ctx context.Context, id UserID) error
}
