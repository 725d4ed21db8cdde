package service

import (
	"context"
	"fmt"
	"time"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/identity"
	"deptrack-core/internal/logger"
)

// UserService resolves authenticated identities to local user records and
// serves the profile, favorites and notification lookups.
type UserService struct {
	userRepo         user.Repository
	favoriteRepo     project.FavoriteRepo
	notificationRepo notification.Repo
	projectRepo      project.Repo
	identityClient   *identity.Client
	log              *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo user.Repository,
	favoriteRepo project.FavoriteRepo,
	notificationRepo notification.Repo,
	projectRepo project.Repo,
	identityClient *identity.Client,
	log *logger.Logger,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		favoriteRepo:     favoriteRepo,
		notificationRepo: notificationRepo,
		projectRepo:      projectRepo,
		identityClient:   identityClient,
		log:              log,
	}
}

// GetOrCreateByExternalID resolves an identity provider subject to a local
// user, provisioning one on first sight. A user without a stored GitHub
// credential gets one best-effort refresh from the identity provider; the
// lookup still succeeds when GitHub is not linked.
func (s *UserService) GetOrCreateByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	externalIDVO, err := user.NewExternalID(externalID)
	if err != nil {
		return nil, user.ErrInvalidUserData("external_id", err)
	}

	u, err := s.userRepo.FindByExternalID(ctx, externalIDVO)
	if err == nil {
		if !u.GitHubConnected() {
			s.refreshGitHubCredential(ctx, u)
		}
		return u, nil
	}

	profile, err := s.identityClient.GetUser(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity profile: %w", err)
	}

	u, err = user.NewUser(profile.Email, profile.Username, externalID)
	if err != nil {
		return nil, user.ErrInvalidUserData("profile", err)
	}

	s.refreshGitHubCredential(ctx, u)

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.log.Info("user provisioned", "user_id", u.ID().String(), "username", u.Username().String())
	return u, nil
}

// refreshGitHubCredential pulls the user's GitHub OAuth token from the
// identity provider and stores it. Missing tokens are expected for users who
// never linked GitHub, so failures only log.
func (s *UserService) refreshGitHubCredential(ctx context.Context, u *user.User) {
	token, err := s.identityClient.GetGitHubAccessToken(ctx, u.ExternalID().String())
	if err != nil {
		s.log.Debug("no GitHub credential available", "user_id", u.ID().String(), "error", err)
		return
	}

	if err := u.ConnectGitHub(token.Login, token.AccountID, token.Token); err != nil {
		s.log.Warn("failed to attach GitHub credential", "user_id", u.ID().String(), "error", err)
		return
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		s.log.Warn("failed to persist GitHub credential", "user_id", u.ID().String(), "error", err)
	}
}

// Profile returns the user's own profile
func (s *UserService) Profile(u *user.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:              u.ID().String(),
		Email:           u.Email().String(),
		Username:        u.Username().String(),
		GitHubConnected: u.GitHubConnected(),
		CreatedAt:       u.CreatedAt().Format(time.RFC3339),
	}
	if cred := u.GitHub(); cred != nil {
		resp.GitHubLogin = cred.Login
	}
	return resp
}

// AddFavorite marks one of the user's projects as a favorite. Favoriting a
// project twice is a no-op. The project must exist and belong to the user.
func (s *UserService) AddFavorite(ctx context.Context, u *user.User, projectID string) error {
	id, err := project.ParseProjectID(projectID)
	if err != nil {
		return project.ErrProjectNotFound(projectID)
	}

	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.BelongsToUser(u.ID()) {
		return project.ErrProjectNotFound(projectID)
	}

	if err := s.favoriteRepo.Save(ctx, project.NewFavorite(u.ID(), id)); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unfavorites a project
func (s *UserService) RemoveFavorite(ctx context.Context, u *user.User, projectID string) error {
	id, err := project.ParseProjectID(projectID)
	if err != nil {
		return project.ErrFavoriteNotFound(projectID)
	}

	existed, err := s.favoriteRepo.Delete(ctx, u.ID(), id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if !existed {
		return project.ErrFavoriteNotFound(projectID)
	}
	return nil
}

// ListFavorites retrieves the user's favorited projects with pagination
func (s *UserService) ListFavorites(ctx context.Context, u *user.User, page, limit int32) (*dto.ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	projects, err := s.favoriteRepo.FindByUserID(ctx, u.ID(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	total, err := s.favoriteRepo.CountByUserID(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
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

// ListNotifications retrieves the user's notifications, newest first
func (s *UserService) ListNotifications(ctx context.Context, u *user.User, page, limit int32) (*dto.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	notifications, err := s.notificationRepo.FindByUserID(ctx, u.ID(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	total, err := s.notificationRepo.CountByUserID(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnreadByUserID(ctx, u.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = &dto.NotificationResponse{
			ID:        n.ID().String(),
			Message:   n.Message(),
			Read:      n.Read(),
			CreatedAt: n.CreatedAt().Format(time.RFC3339),
		}
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Unread:        unread,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

// MarkNotificationRead flags one of the user's notifications as read
func (s *UserService) MarkNotificationRead(ctx context.Context, u *user.User, notificationID string) error {
	id, err := notification.ParseNotificationID(notificationID)
	if err != nil {
		return notification.ErrNotificationNotFound(notificationID)
	}

	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !n.BelongsToUser(u.ID()) {
		return notification.ErrNotificationNotFound(notificationID)
	}

	n.MarkRead()
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}
