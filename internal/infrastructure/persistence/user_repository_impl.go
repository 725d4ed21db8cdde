package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deptrack-core/internal/database"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/infrastructure/encryption"
)

// UserRepoImpl implements the domain user.Repository interface.
// GitHub OAuth tokens are sealed by the encryption service before they
// reach the database.
type UserRepoImpl struct {
	db    *sql.DB
	vault *encryption.Service
}

// NewUserRepository creates a new user repository implementation
func NewUserRepository(db *database.DB, vault *encryption.Service) user.Repository {
	return &UserRepoImpl{
		db:    db.GetConnection(),
		vault: vault,
	}
}

// Save persists a user (create or update)
func (r *UserRepoImpl) Save(ctx context.Context, u *user.User) error {
	var githubLogin sql.NullString
	var githubAccountID sql.NullInt64
	var githubToken sql.NullString

	if cred := u.GitHub(); cred != nil {
		sealed, err := r.vault.Encrypt(cred.Token)
		if err != nil {
			return fmt.Errorf("failed to seal GitHub token: %w", err)
		}
		githubLogin = sql.NullString{String: cred.Login, Valid: true}
		githubAccountID = sql.NullInt64{Int64: cred.AccountID, Valid: true}
		githubToken = sql.NullString{String: sealed, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, username, external_id, github_login, github_account_id, github_token, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE
		 SET email = EXCLUDED.email,
		     username = EXCLUDED.username,
		     github_login = EXCLUDED.github_login,
		     github_account_id = EXCLUDED.github_account_id,
		     github_token = EXCLUDED.github_token,
		     updated_at = EXCLUDED.updated_at`,
		u.ID().UUID(), u.Email().String(), u.Username().String(), u.ExternalID().String(),
		githubLogin, githubAccountID, githubToken, u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by their ID
func (r *UserRepoImpl) FindByID(ctx context.Context, id user.UserID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, username, external_id, github_login, github_account_id, github_token, created_at, updated_at
		 FROM users WHERE id = $1`,
		id.UUID(),
	)

	u, err := r.scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound(id.String())
	}
	return u, err
}

// FindByExternalID retrieves a user by their identity provider subject
func (r *UserRepoImpl) FindByExternalID(ctx context.Context, externalID user.ExternalID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, username, external_id, github_login, github_account_id, github_token, created_at, updated_at
		 FROM users WHERE external_id = $1`,
		externalID.String(),
	)

	u, err := r.scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound(externalID.String())
	}
	return u, err
}

// ExistsByEmail checks if a user with the given email exists
func (r *UserRepoImpl) ExistsByEmail(ctx context.Context, email user.Email) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// Delete removes a user from persistence
func (r *UserRepoImpl) Delete(ctx context.Context, id user.UserID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.UUID())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepoImpl) scanUser(row *sql.Row) (*user.User, error) {
	var (
		id, email, username, externalID string
		githubLogin, githubToken        sql.NullString
		githubAccountID                 sql.NullInt64
		createdAt, updatedAt            time.Time
	)

	if err := row.Scan(&id, &email, &username, &externalID, &githubLogin, &githubAccountID, &githubToken, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	var cred *user.GitHubCredential
	if githubToken.Valid {
		token, err := r.vault.Decrypt(githubToken.String)
		if err != nil {
			return nil, fmt.Errorf("failed to unseal GitHub token: %w", err)
		}
		cred = &user.GitHubCredential{
			Login:     githubLogin.String,
			AccountID: githubAccountID.Int64,
			Token:     token,
		}
	}

	return user.Reconstitute(id, email, username, externalID, cred, createdAt, updatedAt)
}
