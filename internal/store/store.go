// Package store persists the application document under a small set of
// logical keys, mirroring the browser-storage layout the exported backups
// use: one key for channels, one for labels, one for the schema version.
package store

import "sync"

// Storage keys. Logical names, shared by every backend.
const (
	KeyChannels = "lab4_channels"
	KeyLabels   = "lab4_labels"
	KeyVersion  = "lab4_data_version"
)

// Store reads and writes raw values under logical keys. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set writes the value, replacing any previous one.
	Set(key string, value []byte) error
}

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}
