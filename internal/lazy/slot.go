// Package lazy provides a single-value cache cell that loads its
// content from a source path at most once.
package lazy

import "sync"

// LoadFunc reads and parses the value at path.
type LoadFunc[T any] func(path string) (T, error)

// Slot holds either an unloaded source path or a loaded value. All
// holders of a *Slot share one cache state. The zero value is not
// usable; construct with New.
type Slot[T any] struct {
	mu     sync.Mutex
	path   string
	load   LoadFunc[T]
	loaded bool
	value  T
}

// New returns an unloaded slot that will read path with load on first use.
func New[T any](path string, load LoadFunc[T]) *Slot[T] {
	return &Slot[T]{path: path, load: load}
}

// Get returns the slot's value, loading it on first use. The loaded
// check and the transition happen inside one critical section, so
// concurrent callers serialize and at most one performs the underlying
// read. A failed load leaves the slot unloaded and returns the error;
// a later Get retries from scratch.
func (s *Slot[T]) Get() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.value, nil
	}
	v, err := s.load(s.path)
	if err != nil {
		var zero T
		return zero, err
	}
	s.value = v
	s.loaded = true
	return s.value, nil
}

// Put replaces the cached value and marks the slot loaded, regardless
// of its prior state. Callers use it to keep the cache coherent after
// rewriting the backing file.
func (s *Slot[T]) Put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.loaded = true
}

// Path returns the source location the slot loads from.
func (s *Slot[T]) Path() string { return s.path }

// Loaded reports whether a value is cached.
func (s *Slot[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
