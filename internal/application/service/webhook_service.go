package service

import (
	"context"
	"fmt"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/logger"
	"deptrack-core/internal/manifest"
	"deptrack-core/internal/tasks"
)

// WebhookService reacts to GitHub push webhooks: it decides whether a push
// touched dependency manifests and, if so, schedules a background re-import
// of the targeted project.
type WebhookService struct {
	projectRepo      project.Repo
	notificationRepo notification.Repo
	githubService    repo.GitHubService
	projectService   *ProjectService
	matcher          *manifest.Matcher
	queue            *tasks.Queue
	log              *logger.Logger
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	projectRepo project.Repo,
	notificationRepo notification.Repo,
	githubService repo.GitHubService,
	projectService *ProjectService,
	queue *tasks.Queue,
	log *logger.Logger,
) *WebhookService {
	return &WebhookService{
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
		githubService:    githubService,
		projectService:   projectService,
		matcher:          manifest.NewMatcher(manifest.DefaultPatterns),
		queue:            queue,
		log:              log,
	}
}

// ShouldReimport reports whether any commit in the push added or modified a
// known dependency manifest. Removed files never trigger a re-import.
func (s *WebhookService) ShouldReimport(push *dto.PushEvent) bool {
	for _, commit := range push.Commits {
		if s.matcher.MatchAny(commit.Added) || s.matcher.MatchAny(commit.Modified) {
			return true
		}
	}
	return false
}

// HandlePush processes a push webhook aimed at one project. The caller must
// own the project or be a GitHub collaborator on its repository. When the
// push touched a dependency manifest the re-import runs in the background
// and the project owner gets a notification once it lands.
func (s *WebhookService) HandlePush(ctx context.Context, u *user.User, projectID string, push *dto.PushEvent) (*dto.WebhookResponse, error) {
	id, err := project.ParseProjectID(projectID)
	if err != nil {
		return nil, project.ErrProjectNotFound(projectID)
	}

	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, u, p); err != nil {
		return nil, err
	}

	if !s.ShouldReimport(push) {
		return nil, project.ErrNoRelevantChanges(p.ID().String())
	}

	s.enqueueReimport(u, p)

	return &dto.WebhookResponse{
		Message: fmt.Sprintf("re-import scheduled for %s@%s", p.RepoFullName().String(), p.Branch()),
	}, nil
}

// authorize accepts the project owner outright and asks GitHub about
// everyone else.
func (s *WebhookService) authorize(ctx context.Context, u *user.User, p *project.Project) error {
	if p.BelongsToUser(u.ID()) {
		return nil
	}

	cred := u.GitHub()
	if cred == nil {
		return project.ErrNotCollaborator(u.Username().String(), p.ID().String())
	}

	ok, err := s.githubService.IsCollaborator(ctx, cred.Token, p.RepoFullName().String(), cred.Login)
	if err != nil {
		return fmt.Errorf("failed to check collaborator status: %w", err)
	}
	if !ok {
		return project.ErrNotCollaborator(cred.Login, p.ID().String())
	}
	return nil
}

func (s *WebhookService) enqueueReimport(u *user.User, p *project.Project) {
	s.queue.Enqueue(tasks.Task{
		Name: fmt.Sprintf("webhook-reimport %s", p.ID().String()),
		Run: func(ctx context.Context) error {
			if err := s.projectService.Reimport(ctx, u, p); err != nil {
				return err
			}
			s.notifyOwner(ctx, p)
			return nil
		},
	})
}

// notifyOwner records a notification for the project owner. Failures are
// logged and swallowed so they never fail the re-import itself.
func (s *WebhookService) notifyOwner(ctx context.Context, p *project.Project) {
	message := fmt.Sprintf("Dependencies for %s@%s were re-imported after a push", p.RepoFullName().String(), p.Branch())
	n, err := notification.NewNotification(p.UserID(), message)
	if err != nil {
		s.log.Error("failed to build notification", "project_id", p.ID().String(), "error", err)
		return
	}
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		s.log.Error("failed to save notification", "project_id", p.ID().String(), "error", err)
	}
}
