package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deptrack-core/internal/database"
	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/user"
)

// NotificationRepoImpl implements the domain notification.Repo interface
type NotificationRepoImpl struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository implementation
func NewNotificationRepository(db *database.DB) notification.Repo {
	return &NotificationRepoImpl{db: db.GetConnection()}
}

// Save persists a notification (create or update)
func (r *NotificationRepoImpl) Save(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, user_id, message, read, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET read = EXCLUDED.read`,
		n.ID().UUID(), n.UserID().UUID(), n.Message(), n.Read(), n.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// FindByID retrieves a notification by its ID
func (r *NotificationRepoImpl) FindByID(ctx context.Context, id notification.NotificationID) (*notification.Notification, error) {
	var (
		nid, userID, message string
		read                 bool
		createdAt            time.Time
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, message, read, created_at FROM notifications WHERE id = $1`,
		id.UUID(),
	).Scan(&nid, &userID, &message, &read, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notification.ErrNotificationNotFound(id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}

	uid, err := user.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	return notification.Reconstitute(nid, uid, message, read, createdAt)
}

// FindByUserID retrieves a user's notifications, newest first
func (r *NotificationRepoImpl) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, message, read, created_at
		 FROM notifications WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID.UUID(), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var (
			nid, uid, message string
			read              bool
			createdAt         time.Time
		)
		if err := rows.Scan(&nid, &uid, &message, &read, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		ownerID, err := user.ParseUserID(uid)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID: %w", err)
		}

		n, err := notification.Reconstitute(nid, ownerID, message, read, createdAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// CountByUserID returns the total number of notifications for a user
func (r *NotificationRepoImpl) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1`,
		userID.UUID(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

// CountUnreadByUserID returns the number of unread notifications
func (r *NotificationRepoImpl) CountUnreadByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false`,
		userID.UUID(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}
