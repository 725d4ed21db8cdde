package project

import (
	"context"
	"time"

	"deptrack-core/internal/domain/user"
)

// Favorite marks a project as favorited by a user
type Favorite struct {
	userID    user.UserID
	projectID ProjectID
	createdAt time.Time
}

// NewFavorite creates a new Favorite
func NewFavorite(userID user.UserID, projectID ProjectID) *Favorite {
	return &Favorite{
		userID:    userID,
		projectID: projectID,
		createdAt: time.Now(),
	}
}

// ReconstituteFavorite recreates a Favorite from persistence
func ReconstituteFavorite(userID user.UserID, projectID ProjectID, createdAt time.Time) *Favorite {
	return &Favorite{
		userID:    userID,
		projectID: projectID,
		createdAt: createdAt,
	}
}

func (f *Favorite) UserID() user.UserID {
	return f.userID
}

func (f *Favorite) ProjectID() ProjectID {
	return f.projectID
}

func (f *Favorite) CreatedAt() time.Time {
	return f.createdAt
}

// FavoriteRepo defines the interface for favorite persistence
type FavoriteRepo interface {
	// Save persists a favorite; saving an existing favorite is a no-op
	Save(ctx context.Context, favorite *Favorite) error

	// FindByUserID retrieves a user's favorited projects with pagination
	FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*Project, error)

	// CountByUserID returns the number of favorites for a user
	CountByUserID(ctx context.Context, userID user.UserID) (int64, error)

	// Delete removes a favorite, reporting whether one existed
	Delete(ctx context.Context, userID user.UserID, projectID ProjectID) (bool, error)
}
