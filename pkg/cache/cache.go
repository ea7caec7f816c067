// Package cache provides content-addressed caching of generated shader
// artifacts. Keys derive from the hash of the graph document, so a cache
// entry is valid for exactly one document state and never needs
// invalidation when the graph changes.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl stores it without expiration; any
	// other ttl expires the entry ttl from now, so a negative ttl stores
	// an already expired entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for one generated artifact of a graph
// document: docHash addresses the document content, kind names the artifact
// ("vs", "fs", "shd").
func ArtifactKey(docHash, kind string) string {
	return hashKey("artifact", docHash, kind)
}
