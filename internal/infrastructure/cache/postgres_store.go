// Package cache provides shared key-value stores for transient sync state.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deptrack-core/internal/database"
	syncdomain "deptrack-core/internal/domain/sync"
)

// PostgresStore records sync statuses in the sync_states table so that every
// serving process observes the same state. The insert-or-reclaim statement is
// a single atomic check-and-set per key.
type PostgresStore struct {
	db         *sql.DB
	runningTTL time.Duration
	doneTTL    time.Duration
}

// NewPostgresStore creates a PostgresStore. runningTTL bounds how long a
// running entry blocks fresh starts (guards against crashed workers);
// doneTTL is the retention of completed entries.
func NewPostgresStore(db *database.DB, runningTTL, doneTTL time.Duration) *PostgresStore {
	return &PostgresStore{
		db:         db.GetConnection(),
		runningTTL: runningTTL,
		doneTTL:    doneTTL,
	}
}

// Get reports the current status for a key
func (s *PostgresStore) Get(ctx context.Context, key string) (syncdomain.Status, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM sync_states WHERE key = $1 AND expires_at > now()`,
		key,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return syncdomain.StatusAbsent, nil
	}
	if err != nil {
		return syncdomain.StatusAbsent, fmt.Errorf("failed to read sync state: %w", err)
	}

	return syncdomain.Status(status), nil
}

// Begin marks the key running if no live entry exists. The upsert claims the
// key only when the existing row has expired, so concurrent callers cannot
// both observe a fresh start.
func (s *PostgresStore) Begin(ctx context.Context, key string) (syncdomain.Status, bool, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sync_states (key, status, expires_at, updated_at)
		 VALUES ($1, $2, now() + $3 * interval '1 second', now())
		 ON CONFLICT (key) DO UPDATE
		 SET status = EXCLUDED.status, expires_at = EXCLUDED.expires_at, updated_at = now()
		 WHERE sync_states.expires_at <= now()
		 RETURNING status`,
		key, string(syncdomain.StatusRunning), int64(s.runningTTL.Seconds()),
	).Scan(&status)
	if err == nil {
		return syncdomain.StatusRunning, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return syncdomain.StatusAbsent, false, fmt.Errorf("failed to begin sync state: %w", err)
	}

	// A live entry held the key; report what it says. A concurrent expiry
	// between the two statements reads as absent and resolves on the next
	// poll.
	current, err := s.Get(ctx, key)
	if err != nil {
		return syncdomain.StatusAbsent, false, err
	}
	return current, false, nil
}

// MarkDone transitions the key from running to done
func (s *PostgresStore) MarkDone(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sync_states
		 SET status = $2, expires_at = now() + $3 * interval '1 second', updated_at = now()
		 WHERE key = $1 AND status = $4`,
		key, string(syncdomain.StatusDone), int64(s.doneTTL.Seconds()), string(syncdomain.StatusRunning),
	)
	if err != nil {
		return fmt.Errorf("failed to mark sync state done: %w", err)
	}
	return nil
}
