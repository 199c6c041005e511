// Package kv defines the string key-value store that backs the metrics cache
// and its memory, file and sqlite implementations.
package kv

import "context"

// Store is a flat string-keyed store with local-storage semantics: values are
// opaque strings and a Set replaces any previous value.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases resources held by the store.
	Close() error
}
