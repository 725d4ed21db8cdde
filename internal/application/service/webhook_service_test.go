package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/logger"
	"deptrack-core/internal/tasks"
)

type webhookFixture struct {
	svc           *WebhookService
	projectRepo   *mockProjectRepo
	notifications *mockNotificationRepo
	github        *mockGitHubService
	queue         *tasks.Queue
}

func newWebhookFixture(github *mockGitHubService) *webhookFixture {
	projectRepo := newMockProjectRepo()
	notifications := &mockNotificationRepo{}
	repoRepo := newMockRepositoryRepo()
	projectService := NewProjectService(projectRepo, repoRepo, github, logger.NewNop())
	queue := tasks.NewQueue(1, 16, 5*time.Second, logger.NewNop())
	svc := NewWebhookService(projectRepo, notifications, github, projectService, queue, logger.NewNop())
	return &webhookFixture{
		svc:           svc,
		projectRepo:   projectRepo,
		notifications: notifications,
		github:        github,
		queue:         queue,
	}
}

func pushWith(paths ...string) *dto.PushEvent {
	return &dto.PushEvent{
		Ref:     "refs/heads/master",
		Commits: []dto.PushCommit{{ID: "abc123", Modified: paths}},
	}
}

func TestShouldReimport(t *testing.T) {
	f := newWebhookFixture(&mockGitHubService{})

	tests := []struct {
		name string
		push *dto.PushEvent
		want bool
	}{
		{"gemfile modified", pushWith("Gemfile"), true},
		{"lockfile in subdirectory", pushWith("backend/Gemfile.lock"), true},
		{"docs only", pushWith("README.md", "docs/setup.md"), false},
		{"source only", pushWith("lib/foo.rb"), false},
		{"manifest among noise", pushWith("README.md", "package.json"), true},
		{"added not modified", &dto.PushEvent{Commits: []dto.PushCommit{{Added: []string{"go.mod"}}}}, true},
		{"removed only", &dto.PushEvent{Commits: []dto.PushCommit{{Removed: []string{"Gemfile"}}}}, false},
		{"later commit matches", &dto.PushEvent{Commits: []dto.PushCommit{
			{Modified: []string{"README.md"}},
			{Modified: []string{"requirements.txt"}},
		}}, true},
		{"no commits", &dto.PushEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.svc.ShouldReimport(tt.push))
		})
	}
}

func TestHandlePush_SchedulesReimport(t *testing.T) {
	github := &mockGitHubService{fileContent: "gem 'rails', '7.1'"}
	f := newWebhookFixture(github)
	u := testUser(t)

	p, err := project.NewProject(u.ID(), "dev/api", "master", "Gemfile", "gem 'rails', '6.0'")
	require.NoError(t, err)
	require.NoError(t, f.projectRepo.Save(context.Background(), p))

	resp, err := f.svc.HandlePush(context.Background(), u, p.ID().String(), pushWith("Gemfile"))
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "dev/api@master")

	require.NoError(t, f.queue.Shutdown(context.Background()))

	stored, err := f.projectRepo.FindByID(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, "gem 'rails', '7.1'", stored.Content())
	assert.Equal(t, 1, f.notifications.count(), "owner must be notified after the re-import")
}

func TestHandlePush_IrrelevantPush(t *testing.T) {
	github := &mockGitHubService{}
	f := newWebhookFixture(github)
	u := testUser(t)

	p, err := project.NewProject(u.ID(), "dev/api", "master", "Gemfile", "gem 'rails'")
	require.NoError(t, err)
	require.NoError(t, f.projectRepo.Save(context.Background(), p))

	_, err = f.svc.HandlePush(context.Background(), u, p.ID().String(), pushWith("lib/foo.rb"))
	var domainErr *project.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NO_RELEVANT_CHANGES", domainErr.Code)

	require.NoError(t, f.queue.Shutdown(context.Background()))
	assert.Equal(t, 0, github.fileCount(), "irrelevant pushes must not schedule work")
}

func TestHandlePush_UnknownProject(t *testing.T) {
	f := newWebhookFixture(&mockGitHubService{})
	u := testUser(t)

	_, err := f.svc.HandlePush(context.Background(), u, "3f0e8a1c-0000-0000-0000-000000000000", pushWith("Gemfile"))
	var domainErr *project.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PROJECT_NOT_FOUND", domainErr.Code)

	_, err = f.svc.HandlePush(context.Background(), u, "not-a-uuid", pushWith("Gemfile"))
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PROJECT_NOT_FOUND", domainErr.Code)
}

func TestHandlePush_CollaboratorAuthorization(t *testing.T) {
	owner := testUser(t)

	outsider, err := user.NewUser("other@example.com", "other", "ext_456")
	require.NoError(t, err)
	require.NoError(t, outsider.ConnectGitHub("other", 7777, "gho_other"))

	t.Run("collaborator allowed", func(t *testing.T) {
		github := &mockGitHubService{collaborator: true, fileContent: "content"}
		f := newWebhookFixture(github)

		p, err := project.NewProject(owner.ID(), "dev/api", "master", "Gemfile", "old")
		require.NoError(t, err)
		require.NoError(t, f.projectRepo.Save(context.Background(), p))

		_, err = f.svc.HandlePush(context.Background(), outsider, p.ID().String(), pushWith("Gemfile"))
		require.NoError(t, err)
		require.NoError(t, f.queue.Shutdown(context.Background()))
	})

	t.Run("non-collaborator rejected", func(t *testing.T) {
		github := &mockGitHubService{collaborator: false}
		f := newWebhookFixture(github)

		p, err := project.NewProject(owner.ID(), "dev/api", "master", "Gemfile", "old")
		require.NoError(t, err)
		require.NoError(t, f.projectRepo.Save(context.Background(), p))

		_, err = f.svc.HandlePush(context.Background(), outsider, p.ID().String(), pushWith("Gemfile"))
		var domainErr *project.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_COLLABORATOR", domainErr.Code)
	})
}
