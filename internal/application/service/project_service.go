package service

import (
	"context"
	"fmt"
	"time"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/logger"
)

// ProjectService coordinates manifest imports: resolving the named repository
// against the local cache, fetching the manifest file from GitHub and keeping
// one project per (user, repository, branch, path) key.
type ProjectService struct {
	projectRepo   project.Repo
	repoRepo      repo.RepositoryRepo
	githubService repo.GitHubService
	log           *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo project.Repo,
	repoRepo repo.RepositoryRepo,
	githubService repo.GitHubService,
	log *logger.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		repoRepo:      repoRepo,
		githubService: githubService,
		log:           log,
	}
}

// Import fetches a dependency manifest from GitHub and stores it as a
// project. The repository must already be in the user's local cache; unknown
// names fail before any GitHub call. Importing the same key twice replaces
// the stored content rather than creating a second project.
func (s *ProjectService) Import(ctx context.Context, u *user.User, req *dto.ImportProjectRequest) (*dto.ProjectResponse, error) {
	fullname, err := repo.NewFullName(req.Repository)
	if err != nil {
		return nil, repo.ErrRepositoryNotFound(req.Repository)
	}

	repository, err := s.repoRepo.FindByFullName(ctx, u.ID(), fullname)
	if err != nil {
		return nil, err
	}

	branch := req.Branch
	if branch == "" {
		branch = project.DefaultBranch
	}
	path := req.Path
	if path == "" {
		path = project.DefaultManifestPath
	}

	cred := u.GitHub()
	if cred == nil {
		return nil, repo.ErrGitHubNotConnected(u.ID().String())
	}

	content, err := s.githubService.FetchFileContent(ctx, cred.Token, fullname.String(), branch, path)
	if err != nil {
		return nil, project.ErrImportFailed(fullname.String(), branch, path, err)
	}

	existing, err := s.projectRepo.FindByKey(ctx, u.ID(), fullname, branch, path)
	if err == nil {
		existing.ReplaceContent(content)
		if err := s.projectRepo.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		s.log.Info("project re-imported",
			"project_id", existing.ID().String(),
			"repository", fullname.String(),
			"branch", branch,
		)
		return toProjectDTO(existing), nil
	}

	newProject, err := project.NewProject(u.ID(), fullname.String(), branch, path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create project entity: %w", err)
	}

	if err := s.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.log.Info("project imported",
		"project_id", newProject.ID().String(),
		"repository", repository.FullName().String(),
		"branch", branch,
		"path", path,
	)
	return toProjectDTO(newProject), nil
}

// Reimport re-fetches an existing project's manifest and replaces its
// content in place. Used by the webhook path after a relevant push.
func (s *ProjectService) Reimport(ctx context.Context, u *user.User, p *project.Project) error {
	cred := u.GitHub()
	if cred == nil {
		return repo.ErrGitHubNotConnected(u.ID().String())
	}

	content, err := s.githubService.FetchFileContent(ctx, cred.Token, p.RepoFullName().String(), p.Branch(), p.ManifestPath())
	if err != nil {
		return project.ErrImportFailed(p.RepoFullName().String(), p.Branch(), p.ManifestPath(), err)
	}

	p.ReplaceContent(content)
	if err := s.projectRepo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes all of the user's projects for a repository and branch.
// Deleting a key with no projects is an error so callers can surface it.
func (s *ProjectService) Delete(ctx context.Context, u *user.User, req *dto.DeleteProjectsRequest) (*dto.DeleteProjectsResponse, error) {
	fullname, err := repo.NewFullName(req.Repository)
	if err != nil {
		return nil, project.ErrProjectNotFound(req.Repository)
	}

	branch := req.Branch
	if branch == "" {
		branch = project.DefaultBranch
	}

	removed, err := s.projectRepo.DeleteByRepoBranch(ctx, u.ID(), fullname, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to delete projects: %w", err)
	}
	if removed == 0 {
		return nil, project.ErrProjectNotFound(fmt.Sprintf("%s@%s", fullname.String(), branch))
	}

	s.log.Info("projects deleted",
		"user_id", u.ID().String(),
		"repository", fullname.String(),
		"branch", branch,
		"removed", removed,
	)
	return &dto.DeleteProjectsResponse{Removed: removed}, nil
}

// ListProjects retrieves a user's imported projects with pagination
func (s *ProjectService) ListProjects(ctx context.Context, u *user.User, page, limit int32) (*dto.ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	projects, err := s.projectRepo.FindByUserID(ctx, u.ID(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	total, err := s.projectRepo.CountByUserID(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	projectResponses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		projectResponses[i] = toProjectDTO(p)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.ProjectListResponse{
		Projects: projectResponses,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// toProjectDTO converts a domain project to DTO
func toProjectDTO(p *project.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:         p.ID().String(),
		Source:     p.Source(),
		Repository: p.RepoFullName().String(),
		Branch:     p.Branch(),
		Path:       p.ManifestPath(),
		ImportedAt: p.ImportedAt().Format(time.RFC3339),
		CreatedAt:  p.CreatedAt().Format(time.RFC3339),
	}
}
