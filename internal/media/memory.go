package media

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process blob store for tests and local
// development.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, r io.Reader, contentType string) (string, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("reading blob: %w", err)
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.blobs[id] = data
	s.mu.Unlock()

	return "memory://" + id, id, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blobs[id]; !exists {
		return ErrNotFound
	}
	delete(s.blobs, id)
	return nil
}
