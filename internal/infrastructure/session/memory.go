// Package session holds the local session store backends.
package session

import (
	"sync"

	"github.com/lifeassist/goals/internal/core/ports"
)

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[field]
	return v, ok
}

func (s *MemoryStore) Set(fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range fields {
		s.values[k] = v
	}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return nil
}

// Len reports how many keys are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
