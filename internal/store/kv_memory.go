package store

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns a [KeyValueStorage] that keeps everything in
// process memory. Nothing survives a restart.
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{
		values: make(map[string]string),
	}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}
