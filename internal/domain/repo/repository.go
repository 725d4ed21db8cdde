package repo

import (
	"context"

	"deptrack-core/internal/domain/user"
)

// Filter restricts repository listings. All fields are optional and combined
// with logical AND; matching is exact.
type Filter struct {
	Language  *string
	Owner     *string
	OwnerType *OwnerType
	Private   *bool
}

// RepositoryRepo defines the interface for repository persistence
// This is defined in the domain layer, but implemented in infrastructure
type RepositoryRepo interface {
	// Save persists a repository, upserting on (user, full name)
	Save(ctx context.Context, repo *Repository) error

	// FindByFullName retrieves one of the user's repositories by full name
	FindByFullName(ctx context.Context, userID user.UserID, fullname FullName) (*Repository, error)

	// FindByUserID retrieves filtered repositories for a user with pagination
	FindByUserID(ctx context.Context, userID user.UserID, filter Filter, limit, offset int32) ([]*Repository, error)

	// CountByUserID returns the number of a user's repositories matching the filter
	CountByUserID(ctx context.Context, userID user.UserID, filter Filter) (int64, error)

	// Delete removes a repository from persistence
	Delete(ctx context.Context, id RepositoryID) error
}
