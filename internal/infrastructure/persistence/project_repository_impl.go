package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deptrack-core/internal/database"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
)

// ProjectRepoImpl implements the domain project.Repo interface
type ProjectRepoImpl struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository implementation
func NewProjectRepository(db *database.DB) project.Repo {
	return &ProjectRepoImpl{db: db.GetConnection()}
}

const projectColumns = `id, user_id, source, repo_full_name, branch, manifest_path, content, imported_at, created_at, updated_at`

// Save persists a project, replacing any existing row for the same
// (user, repository, branch, path) key
func (r *ProjectRepoImpl) Save(ctx context.Context, p *project.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, source, repo_full_name, branch, manifest_path, content, imported_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, repo_full_name, branch, manifest_path) DO UPDATE
		 SET content = EXCLUDED.content,
		     imported_at = EXCLUDED.imported_at,
		     updated_at = EXCLUDED.updated_at`,
		p.ID().UUID(), p.UserID().UUID(), p.Source(), p.RepoFullName().String(),
		p.Branch(), p.ManifestPath(), p.Content(),
		p.ImportedAt(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert project: %w", err)
	}

	return nil
}

// FindByID retrieves a project by its ID
func (r *ProjectRepoImpl) FindByID(ctx context.Context, id project.ProjectID) (*project.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		id.UUID(),
	)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, project.ErrProjectNotFound(id.String())
	}
	return p, err
}

// FindByKey retrieves the project for a (user, repository, branch, path) key
func (r *ProjectRepoImpl) FindByKey(ctx context.Context, userID user.UserID, fullname repo.FullName, branch, manifestPath string) (*project.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE user_id = $1 AND repo_full_name = $2 AND branch = $3 AND manifest_path = $4`,
		userID.UUID(), fullname.String(), branch, manifestPath,
	)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, project.ErrProjectNotFound(fmt.Sprintf("%s@%s:%s", fullname.String(), branch, manifestPath))
	}
	return p, err
}

// FindByUserID retrieves projects for a user with pagination
func (r *ProjectRepoImpl) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*project.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE user_id = $1 ORDER BY repo_full_name, branch, manifest_path LIMIT $2 OFFSET $3`,
		userID.UUID(), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// CountByUserID returns the total number of projects for a user
func (r *ProjectRepoImpl) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE user_id = $1`,
		userID.UUID(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// DeleteByRepoBranch removes all of the user's projects for a repository
// and branch, returning how many rows were removed
func (r *ProjectRepoImpl) DeleteByRepoBranch(ctx context.Context, userID user.UserID, fullname repo.FullName, branch string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE user_id = $1 AND repo_full_name = $2 AND branch = $3`,
		userID.UUID(), fullname.String(), branch,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete projects: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted projects: %w", err)
	}

	return removed, nil
}

func scanProject(row rowScanner) (*project.Project, error) {
	var (
		id, userID, source, fullName, branch, manifestPath, content string
		importedAt, createdAt, updatedAt                            time.Time
	)

	if err := row.Scan(&id, &userID, &source, &fullName, &branch, &manifestPath, &content, &importedAt, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	uid, err := user.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	return project.Reconstitute(id, uid, source, fullName, branch, manifestPath, content, importedAt, createdAt, updatedAt)
}
