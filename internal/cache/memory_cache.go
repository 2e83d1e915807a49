package cache

import (
	"strings"
	"sync"
	"time"
)

// cacheEntry holds one cached value with its expiry bookkeeping.
type cacheEntry struct {
	value          any
	createdAt      time.Time
	expiresAt      time.Time
	lastAccessedAt time.Time
}

func (ce *cacheEntry) isExpired(now time.Time) bool {
	return now.After(ce.expiresAt)
}

// MemoryCache is an in-process TTL cache. A read never returns an
// expired entry; expired entries are lazily purged on access and can be
// reclaimed in bulk with CleanupExpired.
type MemoryCache struct {
	defaultTTL time.Duration
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
}

// NewMemoryCache creates a new memory cache with the given default TTL
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &MemoryCache{
		defaultTTL: defaultTTL,
		entries:    make(map[string]*cacheEntry),
	}
}

// Get retrieves a value from the cache, or nil/false if the key is
// absent or the entry has expired.
func (mc *MemoryCache) Get(key string) (any, bool) {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, exists := mc.entries[key]
	if !exists {
		return nil, false
	}
	if entry.isExpired(now) {
		delete(mc.entries, key)
		return nil, false
	}

	entry.lastAccessedAt = now
	return entry.value, true
}

// Set stores a value with the given TTL; a non-positive TTL uses the
// cache's default.
func (mc *MemoryCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries[key] = &cacheEntry{
		value:          value,
		createdAt:      now,
		expiresAt:      now.Add(ttl),
		lastAccessedAt: now,
	}
}

// Delete removes a single entry, reporting whether it existed
func (mc *MemoryCache) Delete(key string) bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.entries[key]; !exists {
		return false
	}
	delete(mc.entries, key)
	return true
}

// DeleteContaining removes every entry whose key contains the given
// substring and returns the number of removed entries.
func (mc *MemoryCache) DeleteContaining(substr string) int {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	removed := 0
	for key := range mc.entries {
		if strings.Contains(key, substr) {
			delete(mc.entries, key)
			removed++
		}
	}
	return removed
}

// Clear empties the cache completely
func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.entries = make(map[string]*cacheEntry)
}

// CleanupExpired reclaims memory held by expired entries and returns
// the number of removed entries. This is an optimization only;
// correctness follows from Get never returning expired entries.
func (mc *MemoryCache) CleanupExpired() int {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	removed := 0
	for key, entry := range mc.entries {
		if entry.isExpired(now) {
			delete(mc.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently held, expired or not
func (mc *MemoryCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.entries)
}
