// Package github wraps the go-github client for the API calls this service
// needs: listing a user's repositories, fetching single manifest files and
// checking collaborator status.
package github

import (
	"context"
	"fmt"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Repository represents a repository descriptor from the GitHub API
type Repository struct {
	ID            int64
	FullName      string
	Owner         string
	OwnerType     string
	Language      *string
	Private       bool
	DefaultBranch string
}

// Client handles GitHub API interactions. Calls authenticate with the
// per-user OAuth token passed to each method, so one Client serves all users.
type Client struct {
	baseURL string
}

// NewClient creates a new GitHub API client
func NewClient() *Client {
	return &Client{}
}

// NewClientWithBaseURL creates a client against a non-default API endpoint,
// used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

func (c *Client) api(ctx context.Context, accessToken string) (*gogithub.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	gh := gogithub.NewClient(oauth2.NewClient(ctx, ts))
	if c.baseURL != "" {
		var err error
		gh, err = gh.WithEnterpriseURLs(c.baseURL, c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure GitHub base URL: %w", err)
		}
	}
	return gh, nil
}

// ListUserRepositories fetches all repositories visible to the token's user,
// handling API pagination transparently.
func (c *Client) ListUserRepositories(ctx context.Context, accessToken string) ([]Repository, error) {
	gh, err := c.api(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	opts := &gogithub.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}

	var all []Repository
	for {
		repos, resp, err := gh.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}

		for _, r := range repos {
			all = append(all, toRepository(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetFileContent fetches one file's decoded content at the named ref.
func (c *Client) GetFileContent(ctx context.Context, accessToken, fullname, ref, path string) (string, error) {
	owner, name, err := splitFullName(fullname)
	if err != nil {
		return "", err
	}

	gh, err := c.api(ctx, accessToken)
	if err != nil {
		return "", err
	}

	file, _, _, err := gh.Repositories.GetContents(ctx, owner, name, path, &gogithub.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s at %s@%s: %w", path, fullname, ref, err)
	}
	if file == nil {
		return "", fmt.Errorf("%s at %s@%s is a directory, not a file", path, fullname, ref)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode %s at %s@%s: %w", path, fullname, ref, err)
	}

	return content, nil
}

// IsCollaborator reports whether the login is a collaborator on the repository.
func (c *Client) IsCollaborator(ctx context.Context, accessToken, fullname, login string) (bool, error) {
	owner, name, err := splitFullName(fullname)
	if err != nil {
		return false, err
	}

	gh, err := c.api(ctx, accessToken)
	if err != nil {
		return false, err
	}

	isCollaborator, _, err := gh.Repositories.IsCollaborator(ctx, owner, name, login)
	if err != nil {
		return false, fmt.Errorf("failed to check collaborator status on %s: %w", fullname, err)
	}

	return isCollaborator, nil
}

func toRepository(r *gogithub.Repository) Repository {
	ownerType := "user"
	if strings.EqualFold(r.GetOwner().GetType(), "Organization") {
		ownerType = "organization"
	}

	return Repository{
		ID:            r.GetID(),
		FullName:      r.GetFullName(),
		Owner:         r.GetOwner().GetLogin(),
		OwnerType:     ownerType,
		Language:      r.Language,
		Private:       r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
	}
}

func splitFullName(fullname string) (owner, name string, err error) {
	parts := strings.SplitN(fullname, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository full name %q", fullname)
	}
	return parts[0], parts[1], nil
}
