package store

import "sync"

// MemoryStore keeps collections in process memory. It is owned by whoever
// creates it and lives as long as that owner; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]Collection
	locks       collectionLocks
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]Collection)}
}

// Load implements Store. The returned collection is a copy.
func (s *MemoryStore) Load(name string) (Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return Collection{}, nil
	}
	return c.Clone(), nil
}

// Save implements Store.
func (s *MemoryStore) Save(name string, c Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		c = Collection{}
	}
	s.collections[name] = c.Clone()
	return nil
}

// Update implements Store.
func (s *MemoryStore) Update(name string, fn func(Collection) error) error {
	return update(s, &s.locks, name, fn)
}

// Replace implements Store.
func (s *MemoryStore) Replace(name string, c Collection) error {
	return replace(s, &s.locks, name, c)
}
