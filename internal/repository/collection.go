package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a stored value that does not decode as a collection.
var ErrMalformed = errors.New("malformed collection")

// LoadResult describes what Load found under a key.
type LoadResult struct {
	// Found is true when the key held a value that decoded cleanly.
	Found bool
	// DecodeErr is set when a value existed but could not be decoded.
	// Such a value is treated as absent.
	DecodeErr error
}

// SeedResult describes how SeedIfAbsent produced its collection.
type SeedResult struct {
	// Seeded is true when the defaults were used (and written).
	Seeded bool
	// Recovered carries the decode error that forced seeding, if any.
	Recovered error
}

// Collection persists one ordered entity collection as a JSON array under
// a single key.
type Collection[T any] struct {
	kv  KVRepo
	key string
}

// NewCollection binds a collection of T to key in kv.
func NewCollection[T any](kv KVRepo, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

func (c *Collection[T]) Key() string { return c.key }

// Load reads and decodes the collection. A missing key or an undecodable
// value yields Found=false and no error; only storage read failures are
// returned as errors.
func (c *Collection[T]) Load(ctx context.Context) ([]T, LoadResult, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, LoadResult{}, nil
		}
		return nil, LoadResult{}, fmt.Errorf("loading %s: %w", c.key, err)
	}

	items, err := decodeCollection[T](raw)
	if err != nil {
		return nil, LoadResult{DecodeErr: fmt.Errorf("decoding %s: %w", c.key, err)}, nil
	}
	return items, LoadResult{Found: true}, nil
}

// Save encodes and writes the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", c.key, err)
	}
	return nil
}

// SeedIfAbsent returns the stored collection when it loads cleanly.
// Otherwise it writes defaults and returns them. When that write fails the
// defaults are still returned together with the error.
func (c *Collection[T]) SeedIfAbsent(ctx context.Context, defaults []T) ([]T, SeedResult, error) {
	items, res, err := c.Load(ctx)
	if err != nil {
		return nil, SeedResult{}, err
	}
	if res.Found {
		return items, SeedResult{}, nil
	}

	seed := SeedResult{Seeded: true, Recovered: res.DecodeErr}
	if err := c.Save(ctx, defaults); err != nil {
		return defaults, seed, err
	}
	return defaults, seed, nil
}

func decodeCollection[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
