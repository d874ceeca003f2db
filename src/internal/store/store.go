package store

import (
	"encoding/json"
	"sync"
)

// Collection is a named set of keyed records. Each record is kept as compact
// JSON so the store stays agnostic of record schemas.
type Collection map[string]json.RawMessage

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	clone := make(Collection, len(c))
	for key, value := range c {
		clone[key] = append(json.RawMessage(nil), value...)
	}
	return clone
}

// Store loads and saves named collections.
type Store interface {
	// Load returns the named collection. A collection that was never written
	// resolves to an empty, non-nil collection.
	Load(name string) (Collection, error)
	// Save replaces the named collection as a whole.
	Save(name string, c Collection) error
	// Update runs a read-modify-write cycle on the named collection while
	// holding that collection's write lock. The collection passed to fn may be
	// mutated in place; it is saved only when fn returns nil.
	Update(name string, fn func(Collection) error) error
	// Replace saves c under the collection's write lock without reading the
	// current contents, so it also succeeds when those are corrupt.
	Replace(name string, c Collection) error
}

// collectionLocks serializes writers per collection name.
type collectionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *collectionLocks) lock(name string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func update(s Store, locks *collectionLocks, name string, fn func(Collection) error) error {
	unlock := locks.lock(name)
	defer unlock()

	c, err := s.Load(name)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return s.Save(name, c)
}

func replace(s Store, locks *collectionLocks, name string, c Collection) error {
	unlock := locks.lock(name)
	defer unlock()

	return s.Save(name, c)
}
