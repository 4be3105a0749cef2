package auth

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	userID    string
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. Expired entries
// are dropped lazily on lookup.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]sessionEntry),
	}
}

func (s *MemorySessionStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = sessionEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.sessions[token]
	if !exists {
		return "", ErrInvalidSession
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return "", ErrInvalidSession
	}
	return entry.userID, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *MemorySessionStore) Close() error {
	return nil
}
