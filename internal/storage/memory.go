package storage

import "sync"

// Memory is an in-memory KV store used by tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}
