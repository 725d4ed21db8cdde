// Package sync models the transient status of per-user GitHub sync tasks.
package sync

import (
	"context"
	"fmt"
)

// Status is the observed state of a sync task for one user.
type Status string

const (
	// StatusRunning means a fetch has been started and has not finished.
	StatusRunning Status = "running"
	// StatusDone means the most recent fetch completed.
	StatusDone Status = "done"
	// StatusAbsent means no sync is known for the key.
	StatusAbsent Status = "absent"
)

func (s Status) String() string {
	return string(s)
}

// Key identifies a sync task by username and external account identifier.
func Key(username, externalAccountID string) string {
	return fmt.Sprintf("github-sync/%s:%s", username, externalAccountID)
}

// Store is a shared key-value record of sync task statuses. Implementations
// back onto storage visible to every serving process; a process-local map is
// only acceptable in tests. Begin must be atomic per key so that two
// concurrent callers cannot both observe a fresh start.
type Store interface {
	// Get reports the current status for a key. Expired entries read as
	// StatusAbsent.
	Get(ctx context.Context, key string) (Status, error)

	// Begin marks the key running if no live entry exists. It returns the
	// status now recorded and whether this call freshly started the task.
	// When the key is already running or done, Begin leaves the entry
	// untouched and reports started=false.
	Begin(ctx context.Context, key string) (Status, bool, error)

	// MarkDone transitions the key from running to done.
	MarkDone(ctx context.Context, key string) error
}
