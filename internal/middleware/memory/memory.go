// Package memory is an in-process TTL storage for cached responses.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	content   []byte
	expiresAt time.Time
}

// Storage keeps content until its ttl is passed.
type Storage struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		entries: map[string]entry{},
		now:     time.Now,
	}
}

// Get returns nil when key is absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil
	}

	return e.content
}

// Set stores content for duration. Expired entries are purged on every call.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, v := range s.entries {
		if !now.Before(v.expiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[key] = entry{
		content:   content,
		expiresAt: now.Add(duration),
	}
}
