package project

import (
	"context"

	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
)

// Repo defines the interface for project persistence
// This is defined in the domain layer, but implemented in infrastructure
type Repo interface {
	// Save persists a project, replacing any existing row for the same
	// (user, repository, branch, path) key
	Save(ctx context.Context, project *Project) error

	// FindByID retrieves a project by its ID
	FindByID(ctx context.Context, id ProjectID) (*Project, error)

	// FindByKey retrieves the project for a (user, repository, branch, path) key
	FindByKey(ctx context.Context, userID user.UserID, fullname repo.FullName, branch, manifestPath string) (*Project, error)

	// FindByUserID retrieves projects for a user with pagination
	FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*Project, error)

	// CountByUserID returns the total number of projects for a user
	CountByUserID(ctx context.Context, userID user.UserID) (int64, error)

	// DeleteByRepoBranch removes all of the user's projects for a repository
	// and branch, returning how many rows were removed
	DeleteByRepoBranch(ctx context.Context, userID user.UserID, fullname repo.FullName, branch string) (int64, error)
}
