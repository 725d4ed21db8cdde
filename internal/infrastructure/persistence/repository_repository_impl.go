package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"deptrack-core/internal/database"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
)

// RepositoryRepoImpl implements the domain repo.RepositoryRepo interface
type RepositoryRepoImpl struct {
	db *sql.DB
}

// NewRepositoryRepository creates a new repository repository implementation
func NewRepositoryRepository(db *database.DB) repo.RepositoryRepo {
	return &RepositoryRepoImpl{db: db.GetConnection()}
}

const repositoryColumns = `id, user_id, github_id, full_name, owner_type, language, private, default_branch, created_at, updated_at`

// Save persists a repository, upserting on (user, full name)
func (r *RepositoryRepoImpl) Save(ctx context.Context, repository *repo.Repository) error {
	lang := sql.NullString{}
	if repository.Language() != nil {
		lang = sql.NullString{String: *repository.Language(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO repositories (id, user_id, github_id, full_name, owner_type, language, private, default_branch, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, full_name) DO UPDATE
		 SET github_id = EXCLUDED.github_id,
		     owner_type = EXCLUDED.owner_type,
		     language = EXCLUDED.language,
		     private = EXCLUDED.private,
		     default_branch = EXCLUDED.default_branch,
		     updated_at = EXCLUDED.updated_at`,
		repository.ID().UUID(), repository.UserID().UUID(), repository.GitHubID(),
		repository.FullName().String(), repository.OwnerType().String(), lang,
		repository.IsPrivate(), repository.DefaultBranch(),
		repository.CreatedAt(), repository.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert repository: %w", err)
	}

	return nil
}

// FindByFullName retrieves one of the user's repositories by full name
func (r *RepositoryRepoImpl) FindByFullName(ctx context.Context, userID user.UserID, fullname repo.FullName) (*repo.Repository, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+repositoryColumns+` FROM repositories WHERE user_id = $1 AND full_name = $2`,
		userID.UUID(), fullname.String(),
	)

	repository, err := scanRepository(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repo.ErrRepositoryNotFound(fullname.String())
	}
	return repository, err
}

// FindByUserID retrieves filtered repositories for a user with pagination
func (r *RepositoryRepoImpl) FindByUserID(ctx context.Context, userID user.UserID, filter repo.Filter, limit, offset int32) ([]*repo.Repository, error) {
	where, args := buildRepositoryFilter(userID, filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM repositories WHERE %s ORDER BY full_name LIMIT $%d OFFSET $%d`,
		repositoryColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}
	defer rows.Close()

	var repositories []*repo.Repository
	for rows.Next() {
		repository, err := scanRepository(rows)
		if err != nil {
			return nil, err
		}
		repositories = append(repositories, repository)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate repositories: %w", err)
	}

	return repositories, nil
}

// CountByUserID returns the number of a user's repositories matching the filter
func (r *RepositoryRepoImpl) CountByUserID(ctx context.Context, userID user.UserID, filter repo.Filter) (int64, error) {
	where, args := buildRepositoryFilter(userID, filter)

	var count int64
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM repositories WHERE %s`, where),
		args...,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count repositories: %w", err)
	}

	return count, nil
}

// Delete removes a repository from persistence
func (r *RepositoryRepoImpl) Delete(ctx context.Context, id repo.RepositoryID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM repositories WHERE id = $1`, id.UUID())
	if err != nil {
		return fmt.Errorf("failed to delete repository: %w", err)
	}
	return nil
}

// buildRepositoryFilter renders the filter as AND-ed exact-match predicates
func buildRepositoryFilter(userID user.UserID, filter repo.Filter) (string, []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID.UUID()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Language != nil {
		add("language", *filter.Language)
	}
	if filter.Owner != nil {
		add("split_part(full_name, '/', 1)", *filter.Owner)
	}
	if filter.OwnerType != nil {
		add("owner_type", filter.OwnerType.String())
	}
	if filter.Private != nil {
		add("private", *filter.Private)
	}

	return strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRepository(row rowScanner) (*repo.Repository, error) {
	var (
		id, userID, fullName, ownerType, defaultBranch string
		githubID                                       int64
		language                                       sql.NullString
		private                                        bool
		createdAt, updatedAt                           time.Time
	)

	if err := row.Scan(&id, &userID, &githubID, &fullName, &ownerType, &language, &private, &defaultBranch, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan repository: %w", err)
	}

	uid, err := user.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	var lang *string
	if language.Valid {
		lang = &language.String
	}

	return repo.Reconstitute(id, uid, githubID, fullName, ownerType, lang, private, defaultBranch, createdAt, updatedAt)
}
