package infrastructure

import (
	"context"
	"sync"
	"time"

	"library-service/internal/domain/repositories"
)

// MemoryRevocationStore is a process-local revocation set for tests
// and single-node runs. Entries expire lazily on lookup.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	expires map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{expires: make(map[string]time.Time)}
}

var _ repositories.RevocationStore = (*MemoryRevocationStore)(nil)

func (s *MemoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.expires[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.expires, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
