package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptrack-core/internal/config"
	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/identity"
	"deptrack-core/internal/logger"
)

type userFixture struct {
	svc           *UserService
	projectRepo   *mockProjectRepo
	favorites     *mockFavoriteRepo
	notifications *mockNotificationRepo
	identityHits  *atomic.Int64
	server        *httptest.Server
}

// newUserFixture stands up a fake identity provider that knows one user,
// ext_123, with a linked GitHub account.
func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ext_123", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"id":"ext_123","username":"dev","email_addresses":[{"email_address":"dev@example.com"}]}`)
	})
	mux.HandleFunc("/users/ext_123/oauth_access_tokens/oauth_github", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"data":[{"token":"gho_token","provider":"oauth_github","label":"dev","provider_user_id":"4242"}]}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := identity.NewClient(&config.AuthConfig{APIURL: server.URL, SecretKey: "sk_test"})

	projectRepo := newMockProjectRepo()
	favorites := newMockFavoriteRepo(projectRepo)
	notifications := &mockNotificationRepo{}
	userRepo := newMockUserRepo()

	svc := NewUserService(userRepo, favorites, notifications, projectRepo, client, logger.NewNop())
	return &userFixture{
		svc:           svc,
		projectRepo:   projectRepo,
		favorites:     favorites,
		notifications: notifications,
		identityHits:  &hits,
		server:        server,
	}
}

func TestGetOrCreateByExternalID_ProvisionsOnce(t *testing.T) {
	f := newUserFixture(t)

	u, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_123")
	require.NoError(t, err)
	assert.Equal(t, "dev", u.Username().String())
	assert.Equal(t, "dev@example.com", u.Email().String())
	require.True(t, u.GitHubConnected())
	assert.Equal(t, int64(4242), u.GitHub().AccountID)

	provisionHits := f.identityHits.Load()
	assert.Equal(t, int64(2), provisionHits, "provisioning needs the profile and the token")

	again, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_123")
	require.NoError(t, err)
	assert.Equal(t, u.ID().String(), again.ID().String())
	assert.Equal(t, provisionHits, f.identityHits.Load(), "known users resolve without identity calls")
}

func TestGetOrCreateByExternalID_UnknownSubject(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_unknown")
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	f := newUserFixture(t)

	u, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_123")
	require.NoError(t, err)

	resp := f.svc.Profile(u)
	assert.Equal(t, "dev", resp.Username)
	assert.True(t, resp.GitHubConnected)
	assert.Equal(t, "dev", resp.GitHubLogin)
}

func TestFavorites_Lifecycle(t *testing.T) {
	f := newUserFixture(t)
	u := testUser(t)

	p, err := project.NewProject(u.ID(), "dev/api", "master", "Gemfile", "content")
	require.NoError(t, err)
	require.NoError(t, f.projectRepo.Save(context.Background(), p))

	require.NoError(t, f.svc.AddFavorite(context.Background(), u, p.ID().String()))
	// Favoriting twice is a no-op.
	require.NoError(t, f.svc.AddFavorite(context.Background(), u, p.ID().String()))

	list, err := f.svc.ListFavorites(context.Background(), u, 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, p.ID().String(), list.Projects[0].ID)
	assert.Equal(t, int64(1), list.Pagination.Total)

	require.NoError(t, f.svc.RemoveFavorite(context.Background(), u, p.ID().String()))

	err = f.svc.RemoveFavorite(context.Background(), u, p.ID().String())
	var domainErr *project.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FAVORITE_NOT_FOUND", domainErr.Code)
}

func TestAddFavorite_ForeignProject(t *testing.T) {
	f := newUserFixture(t)
	u := testUser(t)

	other, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_123")
	require.NoError(t, err)
	p, err := project.NewProject(other.ID(), "other/api", "master", "Gemfile", "content")
	require.NoError(t, err)
	require.NoError(t, f.projectRepo.Save(context.Background(), p))

	err = f.svc.AddFavorite(context.Background(), u, p.ID().String())
	var domainErr *project.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PROJECT_NOT_FOUND", domainErr.Code)
}

func TestNotifications_ListAndMarkRead(t *testing.T) {
	f := newUserFixture(t)
	u := testUser(t)

	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(u.ID(), fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		require.NoError(t, f.notifications.Save(context.Background(), n))
	}

	list, err := f.svc.ListNotifications(context.Background(), u, 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 3)
	assert.Equal(t, int64(3), list.Unread)

	require.NoError(t, f.svc.MarkNotificationRead(context.Background(), u, list.Notifications[0].ID))

	list, err = f.svc.ListNotifications(context.Background(), u, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Unread)
	assert.Equal(t, int64(3), list.Pagination.Total)
}

func TestMarkNotificationRead_ForeignNotification(t *testing.T) {
	f := newUserFixture(t)
	u := testUser(t)

	other, err := f.svc.GetOrCreateByExternalID(context.Background(), "ext_123")
	require.NoError(t, err)
	n, err := notification.NewNotification(other.ID(), "not yours")
	require.NoError(t, err)
	require.NoError(t, f.notifications.Save(context.Background(), n))

	err = f.svc.MarkNotificationRead(context.Background(), u, n.ID().String())
	var domainErr *notification.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", domainErr.Code)
}
