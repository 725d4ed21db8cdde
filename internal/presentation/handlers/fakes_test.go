package handlers

import (
	"context"
	"sync"
	"testing"

	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
)

// In-memory doubles for the domain repositories, just enough to route a
// request through the real services. The sync worker touches them from a
// background goroutine, so every fake is mutex-guarded.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ExternalID().String()] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id user.UserID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound(id.String())
}

func (f *fakeUserRepo) FindByExternalID(_ context.Context, externalID user.ExternalID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[externalID.String()]
	if !ok {
		return nil, user.ErrUserNotFound(externalID.String())
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, _ user.Email) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ user.UserID) error {
	return nil
}

type fakeRepositoryRepo struct {
	mu    sync.Mutex
	repos map[string]*repo.Repository
}

func newFakeRepositoryRepo() *fakeRepositoryRepo {
	return &fakeRepositoryRepo{repos: make(map[string]*repo.Repository)}
}

func (f *fakeRepositoryRepo) Save(_ context.Context, r *repo.Repository) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[r.FullName().String()] = r
	return nil
}

func (f *fakeRepositoryRepo) FindByFullName(_ context.Context, _ user.UserID, fullname repo.FullName) (*repo.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.repos[fullname.String()]
	if !ok {
		return nil, repo.ErrRepositoryNotFound(fullname.String())
	}
	return r, nil
}

func (f *fakeRepositoryRepo) FindByUserID(_ context.Context, _ user.UserID, _ repo.Filter, _, _ int32) ([]*repo.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*repo.Repository, 0, len(f.repos))
	for _, r := range f.repos {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepositoryRepo) CountByUserID(_ context.Context, _ user.UserID, _ repo.Filter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.repos)), nil
}

func (f *fakeRepositoryRepo) Delete(_ context.Context, _ repo.RepositoryID) error {
	return nil
}

type fakeGitHubService struct {
	content string
}

func (f *fakeGitHubService) FetchUserRepositories(_ context.Context, _ string) ([]*repo.GitHubRepository, error) {
	return nil, nil
}

func (f *fakeGitHubService) FetchFileContent(_ context.Context, _, _, _, _ string) (string, error) {
	return f.content, nil
}

func (f *fakeGitHubService) IsCollaborator(_ context.Context, _, _, _ string) (bool, error) {
	return false, nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*project.Project)}
}

func projectKey(userID user.UserID, fullname repo.FullName, branch, path string) string {
	return userID.String() + "|" + fullname.String() + "|" + branch + "|" + path
}

func (f *fakeProjectRepo) Save(_ context.Context, p *project.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[projectKey(p.UserID(), p.RepoFullName(), p.Branch(), p.ManifestPath())] = p
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id project.ProjectID) (*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, project.ErrProjectNotFound(id.String())
}

func (f *fakeProjectRepo) FindByKey(_ context.Context, userID user.UserID, fullname repo.FullName, branch, path string) (*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[projectKey(userID, fullname, branch, path)]
	if !ok {
		return nil, project.ErrProjectNotFound(fullname.String())
	}
	return p, nil
}

func (f *fakeProjectRepo) FindByUserID(_ context.Context, _ user.UserID, _, _ int32) ([]*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*project.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) CountByUserID(_ context.Context, _ user.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.projects)), nil
}

func (f *fakeProjectRepo) DeleteByRepoBranch(_ context.Context, userID user.UserID, fullname repo.FullName, branch string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for key, p := range f.projects {
		if p.UserID() == userID && p.RepoFullName() == fullname && p.Branch() == branch {
			delete(f.projects, key)
			removed++
		}
	}
	return removed, nil
}

type fakeFavoriteRepo struct{}

func (fakeFavoriteRepo) Save(_ context.Context, _ *project.Favorite) error {
	return nil
}

func (fakeFavoriteRepo) FindByUserID(_ context.Context, _ user.UserID, _, _ int32) ([]*project.Project, error) {
	return nil, nil
}

func (fakeFavoriteRepo) CountByUserID(_ context.Context, _ user.UserID) (int64, error) {
	return 0, nil
}

func (fakeFavoriteRepo) Delete(_ context.Context, _ user.UserID, _ project.ProjectID) (bool, error) {
	return false, nil
}

type fakeNotificationRepo struct{}

func (fakeNotificationRepo) Save(_ context.Context, _ *notification.Notification) error {
	return nil
}

func (fakeNotificationRepo) FindByID(_ context.Context, id notification.NotificationID) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound(id.String())
}

func (fakeNotificationRepo) FindByUserID(_ context.Context, _ user.UserID, _, _ int32) ([]*notification.Notification, error) {
	return nil, nil
}

func (fakeNotificationRepo) CountByUserID(_ context.Context, _ user.UserID) (int64, error) {
	return 0, nil
}

func (fakeNotificationRepo) CountUnreadByUserID(_ context.Context, _ user.UserID) (int64, error) {
	return 0, nil
}

// handlerUser builds a persisted user with a linked GitHub account, so that
// resolving the principal never reaches the identity provider.
func handlerUser(t *testing.T, users *fakeUserRepo) *user.User {
	t.Helper()
	u, err := user.NewUser("dev@example.com", "dev", "ext_123")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if err := u.ConnectGitHub("dev", 4242, "gho_token"); err != nil {
		t.Fatalf("ConnectGitHub: %v", err)
	}
	if err := users.Save(context.Background(), u); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return u
}
