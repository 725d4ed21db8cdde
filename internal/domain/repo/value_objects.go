package repo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RepositoryID is a value object representing a repository record's unique identifier
type RepositoryID struct {
	value uuid.UUID
}

// NewRepositoryID creates a new RepositoryID
func NewRepositoryID() RepositoryID {
	return RepositoryID{value: uuid.New()}
}

// ParseRepositoryID parses a string into a RepositoryID
func ParseRepositoryID(id string) (RepositoryID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return RepositoryID{}, fmt.Errorf("invalid repository ID format: %w", err)
	}
	return RepositoryID{value: uid}, nil
}

func (id RepositoryID) String() string {
	return id.value.String()
}

func (id RepositoryID) UUID() uuid.UUID {
	return id.value
}

func (id RepositoryID) Equals(other RepositoryID) bool {
	return id.value == other.value
}

// FullName is a value object representing an "owner/name" repository name
type FullName struct {
	value string
}

// NewFullName creates a new FullName with validation
func NewFullName(fullname string) (FullName, error) {
	fullname = strings.TrimSpace(fullname)

	if fullname == "" {
		return FullName{}, fmt.Errorf("repository full name cannot be empty")
	}

	if len(fullname) > 255 {
		return FullName{}, fmt.Errorf("repository full name too long (max 255 characters)")
	}

	parts := strings.SplitN(fullname, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return FullName{}, fmt.Errorf("repository full name must be in owner/name format")
	}

	return FullName{value: fullname}, nil
}

func (n FullName) String() string {
	return n.value
}

// Owner returns the owner half of the full name
func (n FullName) Owner() string {
	return strings.SplitN(n.value, "/", 2)[0]
}

// Name returns the repository half of the full name
func (n FullName) Name() string {
	return strings.SplitN(n.value, "/", 2)[1]
}

func (n FullName) Equals(other FullName) bool {
	return n.value == other.value
}

// OwnerType is a value object distinguishing user-owned from organization-owned repositories
type OwnerType struct {
	value string
}

const (
	ownerTypeUser         = "user"
	ownerTypeOrganization = "organization"
)

// NewOwnerType creates a new OwnerType with validation
func NewOwnerType(ownerType string) (OwnerType, error) {
	ownerType = strings.ToLower(strings.TrimSpace(ownerType))

	switch ownerType {
	case ownerTypeUser, ownerTypeOrganization:
		return OwnerType{value: ownerType}, nil
	default:
		return OwnerType{}, fmt.Errorf("owner type must be %q or %q", ownerTypeUser, ownerTypeOrganization)
	}
}

// OwnerTypeUser returns the user owner type
func OwnerTypeUser() OwnerType {
	return OwnerType{value: ownerTypeUser}
}

// OwnerTypeOrganization returns the organization owner type
func OwnerTypeOrganization() OwnerType {
	return OwnerType{value: ownerTypeOrganization}
}

func (o OwnerType) String() string {
	return o.value
}

func (o OwnerType) IsOrganization() bool {
	return o.value == ownerTypeOrganization
}

func (o OwnerType) Equals(other OwnerType) bool {
	return o.value == other.value
}
