package repo

import (
	"fmt"
	"time"

	"deptrack-core/internal/domain/user"
)

// Repository is a domain entity representing a GitHub repository as known locally
type Repository struct {
	id            RepositoryID
	userID        user.UserID
	githubID      int64
	fullName      FullName
	ownerType     OwnerType
	language      *string
	isPrivate     bool
	defaultBranch string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewRepository creates a new Repository entity
func NewRepository(
	userID user.UserID,
	githubID int64,
	fullname, ownerType string,
	language *string,
	isPrivate bool,
	defaultBranch string,
) (*Repository, error) {
	name, err := NewFullName(fullname)
	if err != nil {
		return nil, fmt.Errorf("invalid full name: %w", err)
	}

	ownerTypeVO, err := NewOwnerType(ownerType)
	if err != nil {
		return nil, fmt.Errorf("invalid owner type: %w", err)
	}

	if githubID <= 0 {
		return nil, fmt.Errorf("GitHub ID must be positive")
	}

	if defaultBranch == "" {
		defaultBranch = "master"
	}

	now := time.Now()
	return &Repository{
		id:            NewRepositoryID(),
		userID:        userID,
		githubID:      githubID,
		fullName:      name,
		ownerType:     ownerTypeVO,
		language:      language,
		isPrivate:     isPrivate,
		defaultBranch: defaultBranch,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstitute recreates a Repository entity from persistence
func Reconstitute(
	id string,
	userID user.UserID,
	githubID int64,
	fullname, ownerType string,
	language *string,
	isPrivate bool,
	defaultBranch string,
	createdAt, updatedAt time.Time,
) (*Repository, error) {
	repoID, err := ParseRepositoryID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid repository ID: %w", err)
	}

	name, err := NewFullName(fullname)
	if err != nil {
		return nil, fmt.Errorf("invalid full name: %w", err)
	}

	ownerTypeVO, err := NewOwnerType(ownerType)
	if err != nil {
		return nil, fmt.Errorf("invalid owner type: %w", err)
	}

	return &Repository{
		id:            repoID,
		userID:        userID,
		githubID:      githubID,
		fullName:      name,
		ownerType:     ownerTypeVO,
		language:      language,
		isPrivate:     isPrivate,
		defaultBranch: defaultBranch,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// Refresh updates mutable metadata from a GitHub sync
func (r *Repository) Refresh(language *string, isPrivate bool, defaultBranch string) {
	r.language = language
	r.isPrivate = isPrivate
	if defaultBranch != "" {
		r.defaultBranch = defaultBranch
	}
	r.updatedAt = time.Now()
}

// BelongsToUser checks if the repository belongs to the specified user
func (r *Repository) BelongsToUser(userID user.UserID) bool {
	return r.userID.Equals(userID)
}

// Getters

func (r *Repository) ID() RepositoryID {
	return r.id
}

func (r *Repository) UserID() user.UserID {
	return r.userID
}

func (r *Repository) GitHubID() int64 {
	return r.githubID
}

func (r *Repository) FullName() FullName {
	return r.fullName
}

// Owner returns the repository owner's login
func (r *Repository) Owner() string {
	return r.fullName.Owner()
}

func (r *Repository) OwnerType() OwnerType {
	return r.ownerType
}

func (r *Repository) Language() *string {
	return r.language
}

func (r *Repository) IsPrivate() bool {
	return r.isPrivate
}

func (r *Repository) DefaultBranch() string {
	return r.defaultBranch
}

func (r *Repository) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Repository) UpdatedAt() time.Time {
	return r.updatedAt
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{id: %s, fullName: %s, userID: %s}",
		r.id.String(), r.fullName.String(), r.userID.String())
}
