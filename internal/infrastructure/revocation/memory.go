package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a single-process Store used in tests and as a fallback when
// Redis is not configured. Expired entries are dropped lazily on lookup.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	exp, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.now().After(exp) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

var _ Store = (*MemoryStore)(nil)
