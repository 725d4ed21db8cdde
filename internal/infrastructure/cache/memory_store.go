package cache

import (
	"context"
	"sync"
	"time"

	syncdomain "deptrack-core/internal/domain/sync"
)

type memoryEntry struct {
	status    syncdomain.Status
	expiresAt time.Time
}

// MemoryStore is a process-local sync.Store for tests and single-instance
// development runs. Production deployments use PostgresStore so that state is
// visible to every serving process.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	runningTTL time.Duration
	doneTTL    time.Duration
	now        func() time.Time
}

// NewMemoryStore creates a MemoryStore with the given retention policy
func NewMemoryStore(runningTTL, doneTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]memoryEntry),
		runningTTL: runningTTL,
		doneTTL:    doneTTL,
		now:        time.Now,
	}
}

// Get reports the current status for a key
func (s *MemoryStore) Get(ctx context.Context, key string) (syncdomain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveStatus(key), nil
}

// Begin marks the key running if no live entry exists
func (s *MemoryStore) Begin(ctx context.Context, key string) (syncdomain.Status, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.liveStatus(key); current != syncdomain.StatusAbsent {
		return current, false, nil
	}

	s.entries[key] = memoryEntry{
		status:    syncdomain.StatusRunning,
		expiresAt: s.now().Add(s.runningTTL),
	}
	return syncdomain.StatusRunning, true, nil
}

// MarkDone transitions the key from running to done
func (s *MemoryStore) MarkDone(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.status != syncdomain.StatusRunning || !entry.expiresAt.After(s.now()) {
		return nil
	}

	s.entries[key] = memoryEntry{
		status:    syncdomain.StatusDone,
		expiresAt: s.now().Add(s.doneTTL),
	}
	return nil
}

// liveStatus returns the unexpired status for a key, dropping stale entries.
// Caller must hold the mutex.
func (s *MemoryStore) liveStatus(key string) syncdomain.Status {
	entry, ok := s.entries[key]
	if !ok {
		return syncdomain.StatusAbsent
	}
	if !entry.expiresAt.After(s.now()) {
		delete(s.entries, key)
		return syncdomain.StatusAbsent
	}
	return entry.status
}
