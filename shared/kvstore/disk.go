package kvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog/log"
)

type diskStore struct {
	mu sync.Mutex
	d  *diskv.Diskv
}

// NewDisk stores each key as one file under the diskv base path. Updates
// are serialized within the process.
func NewDisk(d *diskv.Diskv) Store {
	return &diskStore{d: d}
}

func (store *diskStore) Get(_ context.Context, key string) ([]byte, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.read(key)
}

func (store *diskStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, err := store.read(key)
	found := err == nil

	if err != nil && err != ErrNotFound { //nolint:errorlint
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if err := store.d.Write(key, next); err != nil {
		log.Error().Err(err).Str("key", key).Str("DiskStore", "Update").Msg("failed to write value")

		return fmt.Errorf("failed to write value: %w", err)
	}

	return nil
}

func (store *diskStore) read(key string) ([]byte, error) {
	if !store.d.Has(key) {
		return nil, ErrNotFound
	}

	value, err := store.d.Read(key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("DiskStore", "Get").Msg("failed to read value")

		return nil, fmt.Errorf("failed to read value: %w", err)
	}

	return value, nil
}
