// Package store provides the persistence port used by every tracker
// component. Values are JSON-encoded strings keyed by name, matching the
// whole-value read-modify-write model of the rest of the application.
//
// Implementations degrade instead of failing: a read that cannot be
// served reports the key as absent and a write that cannot be persisted
// returns false. Callers stay usable either way.
package store

import "sync"

// Store is a synchronous string-keyed key-value store.
type Store interface {
	// Get returns the raw value for key and whether it was present.
	Get(key string) (string, bool)
	// Set persists value under key, reporting whether it was stored.
	Set(key, value string) bool
	// Delete removes key. Removing an absent key is a no-op.
	Delete(key string)
}

// Memory is an in-process Store. It is the default backend for tests and
// for runs that do not need persistence between invocations.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return true
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
