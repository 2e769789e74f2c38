package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/orvane/Gemstore_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedItemEntry wraps a catalog item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string              `json:"version"`
	Item     *domain.CatalogItem `json:"item"`
	CachedAt time.Time           `json:"cached_at"`
}

// itemCache provides an in-memory LRU cache for catalog lookups with
// time-based expiration. Catalog rows change rarely and are read on every
// purchase, so a short TTL keeps the hot path off the database without
// serving long-stale prices.
type itemCache struct {
	lru *expirable.LRU[string, *cachedItemEntry]
}

// newItemCache creates a new item cache with the specified size and TTL.
func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[string, *cachedItemEntry](size, nil, ttl),
	}
}

// Get retrieves an item from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *itemCache) Get(itemID string) (*domain.CatalogItem, bool) {
	entry, found := c.lru.Get(itemID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(itemID)
		return nil, false
	}

	return entry.Item, true
}

// Set stores an item in the cache with the current schema version.
func (c *itemCache) Set(item *domain.CatalogItem) {
	c.lru.Add(item.ID, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}

// Invalidate removes an item from the cache.
func (c *itemCache) Invalidate(itemID string) {
	c.lru.Remove(itemID)
}

// Clear removes all entries from the cache.
func (c *itemCache) Clear() {
	c.lru.Purge()
}
