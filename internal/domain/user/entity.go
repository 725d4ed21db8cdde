package user

import (
	"fmt"
	"time"
)

// GitHubCredential holds a user's linked GitHub identity and OAuth token.
// The token is plaintext in memory; persistence seals it at rest.
type GitHubCredential struct {
	Login     string
	AccountID int64
	Token     string
}

// User is a domain entity representing a user in the system
type User struct {
	id         UserID
	email      Email
	username   Username
	externalID ExternalID
	github     *GitHubCredential
	createdAt  time.Time
	updatedAt  time.Time
}

// NewUser creates a new User entity with validation
func NewUser(email, username, externalID string) (*User, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	usernameVO, err := NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	externalIDVO, err := NewExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("invalid external ID: %w", err)
	}

	now := time.Now()
	return &User{
		id:         NewUserID(),
		email:      emailVO,
		username:   usernameVO,
		externalID: externalIDVO,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstitute recreates a User entity from persistence
func Reconstitute(id, email, username, externalID string, github *GitHubCredential, createdAt, updatedAt time.Time) (*User, error) {
	userID, err := ParseUserID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	usernameVO, err := NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	externalIDVO, err := NewExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("invalid external ID: %w", err)
	}

	return &User{
		id:         userID,
		email:      emailVO,
		username:   usernameVO,
		externalID: externalIDVO,
		github:     github,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ConnectGitHub links or refreshes the user's GitHub credential
func (u *User) ConnectGitHub(login string, accountID int64, token string) error {
	if login == "" || token == "" {
		return fmt.Errorf("GitHub login and token are required")
	}

	u.github = &GitHubCredential{
		Login:     login,
		AccountID: accountID,
		Token:     token,
	}
	u.updatedAt = time.Now()
	return nil
}

// GitHubConnected reports whether the user has a linked GitHub credential
func (u *User) GitHubConnected() bool {
	return u.github != nil && u.github.Token != ""
}

// Getters

func (u *User) ID() UserID {
	return u.id
}

func (u *User) Email() Email {
	return u.email
}

func (u *User) Username() Username {
	return u.username
}

func (u *User) ExternalID() ExternalID {
	return u.externalID
}

// GitHub returns the linked credential, or nil when GitHub is not connected
func (u *User) GitHub() *GitHubCredential {
	return u.github
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// String returns string representation (for debugging)
func (u *User) String() string {
	return fmt.Sprintf("User{id: %s, email: %s, username: %s}",
		u.id.String(), u.email.String(), u.username.String())
}
