package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/domain/repo"
	syncdomain "deptrack-core/internal/domain/sync"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/logger"
	"deptrack-core/internal/reponame"
	"deptrack-core/internal/tasks"
)

// Number of concurrent upserts during a sync pass
const syncConcurrency = 5

// RepositoryService coordinates the local repository cache with GitHub:
// filtered listings, the lazy first-access bootstrap and the deduplicated
// asynchronous full re-sync.
type RepositoryService struct {
	repoRepo      repo.RepositoryRepo
	githubService repo.GitHubService
	statusStore   syncdomain.Store
	queue         *tasks.Queue
	log           *logger.Logger
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(
	repoRepo repo.RepositoryRepo,
	githubService repo.GitHubService,
	statusStore syncdomain.Store,
	queue *tasks.Queue,
	log *logger.Logger,
) *RepositoryService {
	return &RepositoryService{
		repoRepo:      repoRepo,
		githubService: githubService,
		statusStore:   statusStore,
		queue:         queue,
		log:           log,
	}
}

// ListRepositories retrieves a user's repositories with filtering and
// pagination. A user with no locally known repositories triggers one
// synchronous best-effort fetch before the query runs, so the first call
// after linking GitHub may be slow.
func (s *RepositoryService) ListRepositories(ctx context.Context, u *user.User, rawFilter dto.RepositoryListFilter, page, limit int32) (*dto.RepositoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter, err := parseFilter(rawFilter)
	if err != nil {
		return nil, err
	}

	if err := s.bootstrapIfEmpty(ctx, u); err != nil {
		// Bootstrap is best-effort; the listing still answers from
		// whatever is cached locally.
		s.log.Warn("repository bootstrap failed", "user_id", u.ID().String(), "error", err)
	}

	offset := (page - 1) * limit

	repositories, err := s.repoRepo.FindByUserID(ctx, u.ID(), filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	total, err := s.repoRepo.CountByUserID(ctx, u.ID(), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count repositories: %w", err)
	}

	repoResponses := make([]*dto.RepositoryResponse, len(repositories))
	for i, repository := range repositories {
		repoResponses[i] = toRepositoryDTO(repository)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.RepositoryListResponse{
		Repositories: repoResponses,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetRepositoryByToken resolves an encoded repository token to one of the
// user's repositories. A token that decodes to an unknown or malformed name
// reads as not found; decoding itself never fails.
func (s *RepositoryService) GetRepositoryByToken(ctx context.Context, u *user.User, token string) (*dto.RepositoryResponse, error) {
	fullname, err := repo.NewFullName(reponame.Decode(token))
	if err != nil {
		return nil, repo.ErrRepositoryNotFound(reponame.Decode(token))
	}

	repository, err := s.repoRepo.FindByFullName(ctx, u.ID(), fullname)
	if err != nil {
		return nil, err
	}

	return toRepositoryDTO(repository), nil
}

// TriggerSync starts a full background re-fetch of the user's repositories
// unless one is already running or recently finished. It returns the
// tracker's current status immediately; the fetch completes out-of-band.
//
// The status store's Begin is the sole deduplication mechanism. Two
// simultaneous first requests can in the worst case both fetch, which is
// harmless: upserts are idempotent per full name.
func (s *RepositoryService) TriggerSync(ctx context.Context, u *user.User) (*dto.SyncStatusResponse, error) {
	cred := u.GitHub()
	if cred == nil {
		return nil, repo.ErrGitHubNotConnected(u.ID().String())
	}

	key := syncdomain.Key(u.Username().String(), strconv.FormatInt(cred.AccountID, 10))

	status, started, err := s.statusStore.Begin(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to begin sync: %w", err)
	}

	if started {
		s.enqueueFullSync(u, key)
	}

	return &dto.SyncStatusResponse{Status: status.String()}, nil
}

func (s *RepositoryService) enqueueFullSync(u *user.User, key string) {
	s.queue.Enqueue(tasks.Task{
		Name: fmt.Sprintf("repo-sync %s", u.Username().String()),
		Run: func(ctx context.Context) error {
			if err := s.syncAll(ctx, u); err != nil {
				return err
			}
			return s.statusStore.MarkDone(ctx, key)
		},
	})
}

// bootstrapIfEmpty performs the lazy first-access fetch: a user with zero
// local repositories and a linked GitHub account gets one synchronous sync
// pass before their first listing.
func (s *RepositoryService) bootstrapIfEmpty(ctx context.Context, u *user.User) error {
	if !u.GitHubConnected() {
		return nil
	}

	total, err := s.repoRepo.CountByUserID(ctx, u.ID(), repo.Filter{})
	if err != nil {
		return fmt.Errorf("failed to count repositories: %w", err)
	}
	if total > 0 {
		return nil
	}

	return s.syncAll(ctx, u)
}

// syncAll fetches the user's full repository list from GitHub and upserts
// each record by full name.
func (s *RepositoryService) syncAll(ctx context.Context, u *user.User) error {
	cred := u.GitHub()
	if cred == nil {
		return repo.ErrGitHubNotConnected(u.ID().String())
	}

	started := time.Now()
	githubRepos, err := s.githubService.FetchUserRepositories(ctx, cred.Token)
	if err != nil {
		return repo.ErrSyncFailed(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncConcurrency)
	for _, ghRepo := range githubRepos {
		ghRepo := ghRepo
		g.Go(func() error {
			return s.upsert(gctx, u, ghRepo)
		})
	}
	if err := g.Wait(); err != nil {
		return repo.ErrSyncFailed(err)
	}

	s.log.Info("repository sync finished",
		"user_id", u.ID().String(),
		"count", len(githubRepos),
		"duration", time.Since(started).String(),
	)
	return nil
}

func (s *RepositoryService) upsert(ctx context.Context, u *user.User, ghRepo *repo.GitHubRepository) error {
	fullname, err := repo.NewFullName(ghRepo.FullName)
	if err != nil {
		// Skip descriptors GitHub should never send.
		s.log.Warn("skipping repository with invalid full name", "full_name", ghRepo.FullName, "error", err)
		return nil
	}

	existing, err := s.repoRepo.FindByFullName(ctx, u.ID(), fullname)
	if err == nil {
		existing.Refresh(ghRepo.Language, ghRepo.Private, ghRepo.DefaultBranch)
		if err := s.repoRepo.Save(ctx, existing); err != nil {
			return fmt.Errorf("failed to update repository %s: %w", fullname.String(), err)
		}
		return nil
	}

	newRepo, err := repo.NewRepository(u.ID(), ghRepo.ID, ghRepo.FullName, ghRepo.OwnerType, ghRepo.Language, ghRepo.Private, ghRepo.DefaultBranch)
	if err != nil {
		return fmt.Errorf("failed to create repository entity: %w", err)
	}

	if err := s.repoRepo.Save(ctx, newRepo); err != nil {
		return fmt.Errorf("failed to save repository %s: %w", fullname.String(), err)
	}
	return nil
}

// parseFilter validates each optional filter field independently
func parseFilter(raw dto.RepositoryListFilter) (repo.Filter, error) {
	var filter repo.Filter

	if raw.Language != "" {
		filter.Language = &raw.Language
	}
	if raw.Owner != "" {
		filter.Owner = &raw.Owner
	}
	if raw.OwnerType != "" {
		ownerType, err := repo.NewOwnerType(raw.OwnerType)
		if err != nil {
			return repo.Filter{}, repo.ErrInvalidRepositoryData("owner_type", err)
		}
		filter.OwnerType = &ownerType
	}
	if raw.Private != "" {
		private, err := strconv.ParseBool(raw.Private)
		if err != nil {
			return repo.Filter{}, repo.ErrInvalidRepositoryData("private", err)
		}
		filter.Private = &private
	}

	return filter, nil
}

// toRepositoryDTO converts a domain repository to DTO
func toRepositoryDTO(r *repo.Repository) *dto.RepositoryResponse {
	return &dto.RepositoryResponse{
		ID:            r.ID().String(),
		FullName:      r.FullName().String(),
		Token:         reponame.Encode(r.FullName().String()),
		Owner:         r.Owner(),
		OwnerType:     r.OwnerType().String(),
		Language:      r.Language(),
		Private:       r.IsPrivate(),
		DefaultBranch: r.DefaultBranch(),
		CreatedAt:     r.CreatedAt().Format(time.RFC3339),
	}
}
