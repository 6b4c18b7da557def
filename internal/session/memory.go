package session

import "sync"

// MemoryStore is an in-memory Store used in tests and anywhere a request
// has no cookie context.
type MemoryStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

// NewMemoryStore creates a MemoryStore seeded with the given token pair.
func NewMemoryStore(accessToken, refreshToken string) *MemoryStore {
	return &MemoryStore{access: accessToken, refresh: refreshToken}
}

func (s *MemoryStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

func (s *MemoryStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *MemoryStore) SetTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = accessToken
	s.refresh = refreshToken
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}
