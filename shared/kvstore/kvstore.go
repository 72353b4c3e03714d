// Package kvstore is the key-value persistence used by the booking journal
// and the submission rate limiter. Every backend offers the same two
// operations: a plain read and an atomic read-modify-write.
package kvstore

//go:generate go run go.uber.org/mock/mockgen -source=./kvstore.go -destination=./mocks/kvstore_mock.go -package=mocks

import (
	"context"
	"errors"
)

const (
	otelScopeName       = "kvstore"
	otelAttrKey         = "kvstore.key"
	otelAttrBackend     = "kvstore.backend"
	maxOptimisticRounds = 5
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrConflict is returned by Update when concurrent writers kept winning
	// the optimistic race.
	ErrConflict = errors.New("kvstore: too many concurrent updates")
)

// UpdateFunc receives the current value (nil with found=false when absent)
// and returns the value to store. Returning an error aborts the update and
// leaves the stored value untouched.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
