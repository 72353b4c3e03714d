package kvstore

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Pruner is implemented by stores that keep every key in process memory and
// therefore need callers to drop entries that no longer matter.
type Pruner interface {
	// Prune deletes every key under prefix whose value stale reports true and
	// returns how many were removed.
	Prune(ctx context.Context, prefix string, stale func(value []byte) bool) (int, error)
}

type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns a process-local store. Values are lost on restart.
func NewMemory() Store {
	return &memoryStore{values: map[string][]byte{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(value), nil
}

func (m *memoryStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.values[key]

	next, err := fn(slices.Clone(current), found)
	if err != nil {
		return err
	}

	m.values[key] = slices.Clone(next)

	return nil
}

func (m *memoryStore) Prune(_ context.Context, prefix string, stale func(value []byte) bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0

	for key, value := range m.values {
		if strings.HasPrefix(key, prefix) && stale(value) {
			delete(m.values, key)
			removed++
		}
	}

	return removed, nil
}
