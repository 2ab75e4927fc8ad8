package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// KVRepo is a local key-value store holding one encoded value per key.
type KVRepo interface {
	// Get returns the stored value, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put creates or replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error
}
