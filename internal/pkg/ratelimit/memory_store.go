package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps windows in process memory. Used when no rate limit
// directory is configured, and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string][]time.Time)}
}

func (s *MemoryStore) Update(_ context.Context, key string, fn func([]time.Time) ([]time.Time, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := make([]time.Time, len(s.windows[key]))
	copy(current, s.windows[key])

	next, save := fn(current)
	if save {
		if len(next) == 0 {
			delete(s.windows, key)
		} else {
			s.windows[key] = next
		}
	}
	return nil
}

func (s *MemoryStore) Len(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows[key])
}
