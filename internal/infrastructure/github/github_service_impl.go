package github

import (
	"context"
	"fmt"

	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) repo.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// FetchUserRepositories fetches all repositories visible to the token's user
func (g *GitHubServiceImpl) FetchUserRepositories(ctx context.Context, accessToken string) ([]*repo.GitHubRepository, error) {
	githubRepos, err := g.client.ListUserRepositories(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories from GitHub: %w", err)
	}

	domainRepos := make([]*repo.GitHubRepository, len(githubRepos))
	for i, ghRepo := range githubRepos {
		domainRepos[i] = &repo.GitHubRepository{
			ID:            ghRepo.ID,
			FullName:      ghRepo.FullName,
			Owner:         ghRepo.Owner,
			OwnerType:     ghRepo.OwnerType,
			Language:      ghRepo.Language,
			Private:       ghRepo.Private,
			DefaultBranch: ghRepo.DefaultBranch,
		}
	}

	return domainRepos, nil
}

// FetchFileContent fetches one file's raw content at the named ref
func (g *GitHubServiceImpl) FetchFileContent(ctx context.Context, accessToken, fullname, ref, path string) (string, error) {
	return g.client.GetFileContent(ctx, accessToken, fullname, ref, path)
}

// IsCollaborator reports whether the login is a collaborator on the repository
func (g *GitHubServiceImpl) IsCollaborator(ctx context.Context, accessToken, fullname, login string) (bool, error) {
	return g.client.IsCollaborator(ctx, accessToken, fullname, login)
}
