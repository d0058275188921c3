package storage

import (
	"maps"
	"sync"
)

// Storage holds configuration attributes as text, keyed by attribute name.
type Storage interface {
	Lookup(name string) (string, bool)
	Set(name, value string)
	Snapshot() map[string]string
}

// MemoryStorage keeps attributes in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewMemoryStorage returns an empty attribute storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		attrs: make(map[string]string),
	}
}

// Lookup returns the raw value stored under name and whether it was present.
func (s *MemoryStorage) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.attrs[name]
	return value, ok
}

// Set stores value under name, replacing any previous value.
func (s *MemoryStorage) Set(name, value string) {
	s.mu.Lock()
	s.attrs[name] = value
	s.mu.Unlock()
}

// Snapshot returns a copy of all attributes.
func (s *MemoryStorage) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.attrs)
}
