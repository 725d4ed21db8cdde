package service

import (
	"context"
	"fmt"
	"sync"

	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
)

// Hand-written mocks shared by the service tests. All of them are
// mutex-guarded because sync and webhook work runs on queue workers.

type mockRepositoryRepo struct {
	mu        sync.Mutex
	repos     map[string]*repo.Repository
	saveCalls int
	saveErr   error
}

func newMockRepositoryRepo() *mockRepositoryRepo {
	return &mockRepositoryRepo{repos: make(map[string]*repo.Repository)}
}

func (m *mockRepositoryRepo) Save(ctx context.Context, r *repo.Repository) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.repos[r.FullName().String()] = r
	return nil
}

func (m *mockRepositoryRepo) FindByFullName(ctx context.Context, userID user.UserID, fullname repo.FullName) (*repo.Repository, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.repos[fullname.String()]
	if !ok || !r.BelongsToUser(userID) {
		return nil, repo.ErrRepositoryNotFound(fullname.String())
	}
	return r, nil
}

func (m *mockRepositoryRepo) FindByUserID(ctx context.Context, userID user.UserID, filter repo.Filter, limit, offset int32) ([]*repo.Repository, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*repo.Repository
	for _, r := range m.repos {
		if r.BelongsToUser(userID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepositoryRepo) CountByUserID(ctx context.Context, userID user.UserID, filter repo.Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, r := range m.repos {
		if r.BelongsToUser(userID) {
			count++
		}
	}
	return count, nil
}

func (m *mockRepositoryRepo) Delete(ctx context.Context, id repo.RepositoryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, r := range m.repos {
		if r.ID().String() == id.String() {
			delete(m.repos, name)
			return nil
		}
	}
	return repo.ErrRepositoryNotFound(id.String())
}

type mockGitHubService struct {
	mu           sync.Mutex
	repos        []*repo.GitHubRepository
	fetchCalls   int
	fetchErr     error
	fileContent  string
	fileCalls    int
	fileErr      error
	collaborator bool
	collabErr    error
}

func (m *mockGitHubService) FetchUserRepositories(ctx context.Context, accessToken string) ([]*repo.GitHubRepository, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.repos, nil
}

func (m *mockGitHubService) FetchFileContent(ctx context.Context, accessToken, fullname, ref, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fileCalls++
	if m.fileErr != nil {
		return "", m.fileErr
	}
	return m.fileContent, nil
}

func (m *mockGitHubService) IsCollaborator(ctx context.Context, accessToken, fullname, login string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collabErr != nil {
		return false, m.collabErr
	}
	return m.collaborator, nil
}

func (m *mockGitHubService) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

func (m *mockGitHubService) fileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fileCalls
}

type mockProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*project.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*project.Project)}
}

func projectKey(userID user.UserID, fullname, branch, path string) string {
	return fmt.Sprintf("%s|%s|%s|%s", userID.String(), fullname, branch, path)
}

func (m *mockProjectRepo) Save(ctx context.Context, p *project.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := projectKey(p.UserID(), p.RepoFullName().String(), p.Branch(), p.ManifestPath())
	m.projects[key] = p
	return nil
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id project.ProjectID) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.projects {
		if p.ID().Equals(id) {
			return p, nil
		}
	}
	return nil, project.ErrProjectNotFound(id.String())
}

func (m *mockProjectRepo) FindByKey(ctx context.Context, userID user.UserID, fullname repo.FullName, branch, manifestPath string) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[projectKey(userID, fullname.String(), branch, manifestPath)]
	if !ok {
		return nil, project.ErrProjectNotFound(fullname.String())
	}
	return p, nil
}

func (m *mockProjectRepo) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*project.Project
	for _, p := range m.projects {
		if p.BelongsToUser(userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, p := range m.projects {
		if p.BelongsToUser(userID) {
			count++
		}
	}
	return count, nil
}

func (m *mockProjectRepo) DeleteByRepoBranch(ctx context.Context, userID user.UserID, fullname repo.FullName, branch string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for key, p := range m.projects {
		if p.BelongsToUser(userID) && p.RepoFullName().String() == fullname.String() && p.Branch() == branch {
			delete(m.projects, key)
			removed++
		}
	}
	return removed, nil
}

func (m *mockProjectRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.projects)
}

type mockFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*project.Favorite
	projects  *mockProjectRepo
}

func newMockFavoriteRepo(projects *mockProjectRepo) *mockFavoriteRepo {
	return &mockFavoriteRepo{favorites: make(map[string]*project.Favorite), projects: projects}
}

func favoriteKey(userID user.UserID, projectID project.ProjectID) string {
	return userID.String() + "|" + projectID.String()
}

func (m *mockFavoriteRepo) Save(ctx context.Context, f *project.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites[favoriteKey(f.UserID(), f.ProjectID())] = f
	return nil
}

func (m *mockFavoriteRepo) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*project.Project, error) {
	m.mu.Lock()
	favorites := make([]*project.Favorite, 0, len(m.favorites))
	for _, f := range m.favorites {
		if f.UserID().Equals(userID) {
			favorites = append(favorites, f)
		}
	}
	m.mu.Unlock()

	var out []*project.Project
	for _, f := range favorites {
		p, err := m.projects.FindByID(ctx, f.ProjectID())
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockFavoriteRepo) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, f := range m.favorites {
		if f.UserID().Equals(userID) {
			count++
		}
	}
	return count, nil
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID user.UserID, projectID project.ProjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favoriteKey(userID, projectID)
	if _, ok := m.favorites[key]; !ok {
		return false, nil
	}
	delete(m.favorites, key)
	return true, nil
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*user.User)}
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID().String()] = u
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id user.UserID) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id.String()]
	if !ok {
		return nil, user.ErrUserNotFound(id.String())
	}
	return u, nil
}

func (m *mockUserRepo) FindByExternalID(ctx context.Context, externalID user.ExternalID) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ExternalID().String() == externalID.String() {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound(externalID.String())
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email user.Email) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email().String() == email.String() {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id user.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id.String())
	return nil
}

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []*notification.Notification
}

func (m *mockNotificationRepo) Save(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.notifications {
		if existing.ID().String() == n.ID().String() {
			m.notifications[i] = n
			return nil
		}
	}
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotificationRepo) FindByID(ctx context.Context, id notification.NotificationID) (*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notifications {
		if n.ID().String() == id.String() {
			return n, nil
		}
	}
	return nil, notification.ErrNotificationNotFound(id.String())
}

func (m *mockNotificationRepo) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*notification.Notification
	for _, n := range m.notifications {
		if n.BelongsToUser(userID) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.BelongsToUser(userID) {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) CountUnreadByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.BelongsToUser(userID) && !n.Read() {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

// testUser builds a user with a linked GitHub credential
func testUser(t interface{ Fatalf(string, ...interface{}) }) *user.User {
	u := testUserWithoutGitHub(t)
	if err := u.ConnectGitHub("dev", 4242, "gho_token"); err != nil {
		t.Fatalf("failed to connect GitHub: %v", err)
	}
	return u
}

func testUserWithoutGitHub(t interface{ Fatalf(string, ...interface{}) }) *user.User {
	u, err := user.NewUser("dev@example.com", "dev", "ext_123")
	if err != nil {
		t.Fatalf("failed to build user: %v", err)
	}
	return u
}
