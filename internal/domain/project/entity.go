package project

import (
	"fmt"
	"time"

	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"

	"github.com/google/uuid"
)

// SourceGitHub tags projects imported from GitHub repositories.
const SourceGitHub = "github"

const (
	// DefaultBranch is assumed when an import names no branch.
	DefaultBranch = "master"
	// DefaultManifestPath is assumed when an import names no file.
	DefaultManifestPath = "Gemfile"
)

// ProjectID is a value object representing a project's unique identifier
type ProjectID struct {
	value uuid.UUID
}

// NewProjectID creates a new ProjectID
func NewProjectID() ProjectID {
	return ProjectID{value: uuid.New()}
}

// ParseProjectID parses a string into a ProjectID
func ParseProjectID(id string) (ProjectID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ProjectID{}, fmt.Errorf("invalid project ID format: %w", err)
	}
	return ProjectID{value: uid}, nil
}

func (id ProjectID) String() string {
	return id.value.String()
}

func (id ProjectID) UUID() uuid.UUID {
	return id.value
}

func (id ProjectID) Equals(other ProjectID) bool {
	return id.value == other.value
}

// Project is a domain entity representing an imported dependency manifest.
// At most one project exists per (user, repository, branch, path); re-import
// replaces the content in place.
type Project struct {
	id           ProjectID
	userID       user.UserID
	source       string
	repoFullName repo.FullName
	branch       string
	manifestPath string
	content      string
	importedAt   time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewProject creates a new Project entity from a fetched manifest
func NewProject(
	userID user.UserID,
	fullname, branch, manifestPath, content string,
) (*Project, error) {
	name, err := repo.NewFullName(fullname)
	if err != nil {
		return nil, fmt.Errorf("invalid repository full name: %w", err)
	}

	if branch == "" {
		branch = DefaultBranch
	}
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}

	now := time.Now()
	return &Project{
		id:           NewProjectID(),
		userID:       userID,
		source:       SourceGitHub,
		repoFullName: name,
		branch:       branch,
		manifestPath: manifestPath,
		content:      content,
		importedAt:   now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute recreates a Project entity from persistence
func Reconstitute(
	id string,
	userID user.UserID,
	source, fullname, branch, manifestPath, content string,
	importedAt, createdAt, updatedAt time.Time,
) (*Project, error) {
	projectID, err := ParseProjectID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID: %w", err)
	}

	name, err := repo.NewFullName(fullname)
	if err != nil {
		return nil, fmt.Errorf("invalid repository full name: %w", err)
	}

	return &Project{
		id:           projectID,
		userID:       userID,
		source:       source,
		repoFullName: name,
		branch:       branch,
		manifestPath: manifestPath,
		content:      content,
		importedAt:   importedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ReplaceContent overwrites the manifest content after a re-import
func (p *Project) ReplaceContent(content string) {
	p.content = content
	now := time.Now()
	p.importedAt = now
	p.updatedAt = now
}

// BelongsToUser checks if the project belongs to the specified user
func (p *Project) BelongsToUser(userID user.UserID) bool {
	return p.userID.Equals(userID)
}

// Getters

func (p *Project) ID() ProjectID {
	return p.id
}

func (p *Project) UserID() user.UserID {
	return p.userID
}

func (p *Project) Source() string {
	return p.source
}

func (p *Project) RepoFullName() repo.FullName {
	return p.repoFullName
}

func (p *Project) Branch() string {
	return p.branch
}

func (p *Project) ManifestPath() string {
	return p.manifestPath
}

func (p *Project) Content() string {
	return p.content
}

func (p *Project) ImportedAt() time.Time {
	return p.importedAt
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// String returns string representation (for debugging)
func (p *Project) String() string {
	return fmt.Sprintf("Project{id: %s, repo: %s, branch: %s, path: %s}",
		p.id.String(), p.repoFullName.String(), p.branch, p.manifestPath)
}
