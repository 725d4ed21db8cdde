package user

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
)

// UserID is a value object representing a user's unique identifier
type UserID struct {
	value uuid.UUID
}

// NewUserID creates a new UserID
func NewUserID() UserID {
	return UserID{value: uuid.New()}
}

// ParseUserID parses a string into a UserID
func ParseUserID(id string) (UserID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user ID format: %w", err)
	}
	return UserID{value: uid}, nil
}

func (id UserID) String() string {
	return id.value.String()
}

func (id UserID) UUID() uuid.UUID {
	return id.value
}

func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

// Email is a value object representing a valid email address
type Email struct {
	value string
}

// NewEmail creates a new Email with validation
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}

	if len(email) > 255 {
		return Email{}, fmt.Errorf("email too long (max 255 characters)")
	}

	if !emailRegex.MatchString(email) {
		return Email{}, fmt.Errorf("invalid email format")
	}

	return Email{value: email}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// Username is a value object representing a user's handle
type Username struct {
	value string
}

// NewUsername creates a new Username with validation
func NewUsername(username string) (Username, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return Username{}, fmt.Errorf("username cannot be empty")
	}

	if len(username) > 64 {
		return Username{}, fmt.Errorf("username too long (max 64 characters)")
	}

	if !usernameRegex.MatchString(username) {
		return Username{}, fmt.Errorf("username may only contain letters, digits, hyphens and underscores")
	}

	return Username{value: username}, nil
}

func (u Username) String() string {
	return u.value
}

func (u Username) Equals(other Username) bool {
	return u.value == other.value
}

// ExternalID is a value object representing the identity provider's subject for a user
type ExternalID struct {
	value string
}

// NewExternalID creates a new ExternalID with validation
func NewExternalID(id string) (ExternalID, error) {
	id = strings.TrimSpace(id)

	if id == "" {
		return ExternalID{}, fmt.Errorf("external ID cannot be empty")
	}

	if len(id) > 128 {
		return ExternalID{}, fmt.Errorf("external ID too long (max 128 characters)")
	}

	return ExternalID{value: id}, nil
}

func (e ExternalID) String() string {
	return e.value
}

func (e ExternalID) Equals(other ExternalID) bool {
	return e.value == other.value
}
