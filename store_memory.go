package flyweight

import (
	gocache "github.com/patrickmn/go-cache"
)

// memoryStore holds constructed values for the lifetime of a Cache.
// Entries never expire and are never removed. Callers serialize add.
type memoryStore struct {
	items *gocache.Cache
	order []string
}

func newMemoryStore() *memoryStore {
	// A cleanup interval below one disables the janitor goroutine.
	return &memoryStore{items: gocache.New(gocache.NoExpiration, 0)}
}

func (s *memoryStore) get(key string) (any, bool) {
	return s.items.Get(key)
}

func (s *memoryStore) add(key string, value any) bool {
	if err := s.items.Add(key, value, gocache.NoExpiration); err != nil {
		return false
	}
	s.order = append(s.order, key)
	return true
}

func (s *memoryStore) keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *memoryStore) len() int {
	return len(s.order)
}
