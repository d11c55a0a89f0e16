package localstore

import (
	"maps"
	"sync"
)

// Keys used for the session tokens.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store is durable client-side key/value storage, the equivalent of a browser's
// localStorage. Values are plain strings and are not encrypted.
type Store interface {
	// Get returns the value for key, or "" when it is not set.
	Get(key string) (string, error)

	// Set writes every pair in values in a single operation.
	Set(values map[string]string) error

	// Remove deletes keys. Removing a missing key is not an error.
	Remove(keys ...string) error
}

// MemoryStore keeps values for the life of the process only.
type MemoryStore struct {
	values map[string]string
	mu     sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.values, values)
	return nil
}

func (s *MemoryStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

// Len reports how many keys are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
