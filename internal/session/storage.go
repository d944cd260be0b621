package session

import (
	"sync"
)

// Storage is a durable key-value store for session data
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// BatchStorage is a Storage able to write several values in a single operation
// A failed SetAll leaves every previously stored value in place
type BatchStorage interface {
	Storage
	SetAll(values map[string]string) error
}

// NewMemoryStorage creates a new in-memory Storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string]string{}}
}

// MemoryStorage is a Storage that lives for the duration of the process
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// Get gets the value stored at key
func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores the value at key
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Remove deletes the value stored at key
func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
