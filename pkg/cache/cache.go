// Package cache memoizes rendered seat maps on the renderer side of the
// engine boundary: the layout generators stay pure and stateless, so any
// caching keys off the full configuration and lives with the consumer.
//
// Backends:
//   - file: XDG cache directory storage for CLI usage
//   - redis: shared storage when several renderers serve the same venues
//   - null: disables caching
//
// Keys are derived from the configuration bytes with [Key], so two
// identical configs always hit the same entry and any config change misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTLs.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Key builds a cache key for a rendered artifact: a namespace (for example
// "svg") plus the SHA-256 of the serialized layout configuration and any
// render options baked into the bytes.
func Key(namespace string, config []byte) string {
	return fmt.Sprintf("%s:%s", namespace, Hash(config))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
