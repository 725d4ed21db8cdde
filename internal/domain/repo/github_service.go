package repo

import (
	"context"
)

// GitHubRepository represents a repository descriptor fetched from the GitHub API
type GitHubRepository struct {
	ID            int64
	FullName      string
	Owner         string
	OwnerType     string
	Language      *string
	Private       bool
	DefaultBranch string
}

// GitHubService is a domain service interface for interacting with GitHub.
// Implementation lives in the infrastructure layer.
type GitHubService interface {
	// FetchUserRepositories fetches all repositories visible to the token's user
	FetchUserRepositories(ctx context.Context, accessToken string) ([]*GitHubRepository, error)

	// FetchFileContent fetches one file's raw content at the named ref
	FetchFileContent(ctx context.Context, accessToken, fullname, ref, path string) (string, error)

	// IsCollaborator reports whether the login is a collaborator on the repository
	IsCollaborator(ctx context.Context, accessToken, fullname, login string) (bool, error)
}
