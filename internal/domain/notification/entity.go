// Package notification models per-user activity notices.
package notification

import (
	"fmt"
	"strings"
	"time"

	"deptrack-core/internal/domain/user"

	"github.com/google/uuid"
)

// NotificationID is a value object representing a notification's unique identifier
type NotificationID struct {
	value uuid.UUID
}

// NewNotificationID creates a new NotificationID
func NewNotificationID() NotificationID {
	return NotificationID{value: uuid.New()}
}

// ParseNotificationID parses a string into a NotificationID
func ParseNotificationID(id string) (NotificationID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return NotificationID{}, fmt.Errorf("invalid notification ID format: %w", err)
	}
	return NotificationID{value: uid}, nil
}

func (id NotificationID) String() string {
	return id.value.String()
}

func (id NotificationID) UUID() uuid.UUID {
	return id.value
}

// Notification is a domain entity representing a message shown to a user
type Notification struct {
	id        NotificationID
	userID    user.UserID
	message   string
	read      bool
	createdAt time.Time
}

// NewNotification creates a new unread Notification
func NewNotification(userID user.UserID, message string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("notification message cannot be empty")
	}

	return &Notification{
		id:        NewNotificationID(),
		userID:    userID,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

// Reconstitute recreates a Notification from persistence
func Reconstitute(id string, userID user.UserID, message string, read bool, createdAt time.Time) (*Notification, error) {
	notificationID, err := ParseNotificationID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid notification ID: %w", err)
	}

	return &Notification{
		id:        notificationID,
		userID:    userID,
		message:   message,
		read:      read,
		createdAt: createdAt,
	}, nil
}

// MarkRead flags the notification as read
func (n *Notification) MarkRead() {
	n.read = true
}

// BelongsToUser checks if the notification belongs to the specified user
func (n *Notification) BelongsToUser(userID user.UserID) bool {
	return n.userID.Equals(userID)
}

// Getters

func (n *Notification) ID() NotificationID {
	return n.id
}

func (n *Notification) UserID() user.UserID {
	return n.userID
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Read() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}
