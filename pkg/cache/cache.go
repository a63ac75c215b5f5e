// Package cache provides the build cache used to skip re-rendering unchanged
// documents. Backends are a sharded file cache (the default), a Redis cache
// for shared setups, and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage backend for rendered document artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL stores forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DocumentKey derives the cache key for a rendered document from the raw
// input bytes and the options that influence the output. Any change to
// either produces a different key.
func DocumentKey(input []byte, opts ...any) string {
	parts := make([]any, 0, len(opts)+1)
	parts = append(parts, Hash(input))
	parts = append(parts, opts...)
	return hashKey("doc", parts...)
}
