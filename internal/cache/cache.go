// Package cache stores collaborator results (search responses and fetched
// page content) so repeated grounding runs against the same claims do not
// re-hit the network.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key for a collaborator call. kind
// distinguishes search results from fetched content.
func Key(kind, value string) string {
	hash := sha256.Sum256([]byte(kind + "\x00" + value))
	return "presscheck:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}
