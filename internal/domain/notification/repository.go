package notification

import (
	"context"

	"deptrack-core/internal/domain/user"
)

// Repo defines the interface for notification persistence
type Repo interface {
	// Save persists a notification (create or update)
	Save(ctx context.Context, notification *Notification) error

	// FindByID retrieves a notification by its ID
	FindByID(ctx context.Context, id NotificationID) (*Notification, error)

	// FindByUserID retrieves a user's notifications, newest first
	FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*Notification, error)

	// CountByUserID returns the total number of notifications for a user
	CountByUserID(ctx context.Context, userID user.UserID) (int64, error)

	// CountUnreadByUserID returns the number of unread notifications
	CountUnreadByUserID(ctx context.Context, userID user.UserID) (int64, error)
}
