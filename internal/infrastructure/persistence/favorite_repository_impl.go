package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"deptrack-core/internal/database"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/user"
)

// FavoriteRepoImpl implements the domain project.FavoriteRepo interface
type FavoriteRepoImpl struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new favorite repository implementation
func NewFavoriteRepository(db *database.DB) project.FavoriteRepo {
	return &FavoriteRepoImpl{db: db.GetConnection()}
}

// Save persists a favorite; saving an existing favorite is a no-op
func (r *FavoriteRepoImpl) Save(ctx context.Context, favorite *project.Favorite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, project_id, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, project_id) DO NOTHING`,
		favorite.UserID().UUID(), favorite.ProjectID().UUID(), favorite.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// FindByUserID retrieves a user's favorited projects with pagination
func (r *FavoriteRepoImpl) FindByUserID(ctx context.Context, userID user.UserID, limit, offset int32) ([]*project.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.user_id, p.source, p.repo_full_name, p.branch, p.manifest_path, p.content, p.imported_at, p.created_at, p.updated_at
		 FROM favorites f
		 JOIN projects p ON p.id = f.project_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID.UUID(), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
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
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return projects, nil
}

// CountByUserID returns the number of favorites for a user
func (r *FavoriteRepoImpl) CountByUserID(ctx context.Context, userID user.UserID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1`,
		userID.UUID(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// Delete removes a favorite, reporting whether one existed
func (r *FavoriteRepoImpl) Delete(ctx context.Context, userID user.UserID, projectID project.ProjectID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND project_id = $2`,
		userID.UUID(), projectID.UUID(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted favorites: %w", err)
	}

	return removed > 0, nil
}
