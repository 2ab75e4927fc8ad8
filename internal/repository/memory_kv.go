package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryKVRepo is a process-local KVRepo for tests and ephemeral runs.
// Values are copied on the way in and out.
type MemoryKVRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{values: make(map[string][]byte)}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return slices.Clone(v), nil
}

func (r *MemoryKVRepo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = slices.Clone(value)
	return nil
}

var (
	_ KVRepo = (*MemoryKVRepo)(nil)
	_ KVRepo = (*SQLiteKVRepo)(nil)
)
