package store

import (
	"sync"
	"time"
)

// KV is the key-value capability the presentation layer persists its
// preferences through.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type entry struct {
	value   string
	updated time.Time
}

// MemoryStore is a concurrency-safe in-memory implementation of KV.
type MemoryStore struct {
	mu sync.RWMutex

	data map[string]entry

	// optional max age for entries since their last Set
	maxAge time.Duration
	now    func() time.Time
}

// NewMemoryStore creates a new MemoryStore.
// If maxAge is <= 0, entries never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]entry),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Get returns the value for key. Expired entries read as missing even
// before Prune removes them.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.expired(e, s.now()) {
		return "", false
	}
	return e.value, true
}

// Set stores value under key and refreshes its age.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = entry{value: value, updated: s.now()}
}

// Remove deletes key. Removing a missing key is a no-op.
func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
}

// Prune enforces retention by age and returns the number of removed entries.
func (s *MemoryStore) Prune() int {
	if s.maxAge <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.data {
		if s.expired(e, now) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) expired(e entry, now time.Time) bool {
	return s.maxAge > 0 && now.Sub(e.updated) > s.maxAge
}
