package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the in-process cache layer.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached value for key, if present and unexpired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.store.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores value under key; ttl 0 uses the default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops all entries.
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
