package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store is a shared counter keyed by string. Implementations must make the
// increment and the first-increment expiry atomic across processes.
type Store interface {
	// IncrementAndGetCount adds one to key and returns the new value. When
	// the increment creates the key, the key expires after ttl.
	IncrementAndGetCount(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore keeps counters in process. It only coordinates a single
// instance and is meant for development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) IncrementAndGetCount(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || !now.Before(e.expiresAt) {
		e = &memoryEntry{expiresAt: now.Add(ttl)}
		s.entries[key] = e
	}
	e.count++

	s.sweep(now)
	return e.count, nil
}

// sweep drops expired keys once the map grows.
func (s *MemoryStore) sweep(now time.Time) {
	if len(s.entries) < 1024 {
		return
	}
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
