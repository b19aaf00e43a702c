package registry

import (
	"sync"
	"time"

	"octavia-hq/vela/pkg/compile"
	"octavia-hq/vela/pkg/config"
)

// Cache stores compiled artifacts by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) (*compile.CompiledOperation, bool)
	Set(key string, op *compile.CompiledOperation)
	Delete(key string)
	Clear()
	Size() int

	// Sweep removes expired entries and reports how many were dropped.
	Sweep() int

	// Close releases cache resources. The cache must not be used after.
	Close()
}

// ArtifactCache is the default bounded in-memory cache. When full it evicts
// by insertion order (FIFO) or, when configured, by last access (LRU).
// A TTL of zero disables expiry.
type ArtifactCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry

	maxEntries int
	ttl        time.Duration
	lru        bool
	seq        uint64

	// onEvict is called outside hot paths for each removed entry, with the
	// reason: "capacity", "ttl" or "invalidate".
	onEvict func(reason string)
}

type cacheEntry struct {
	op         *compile.CompiledOperation
	expiresAt  time.Time
	lastAccess time.Time
	seq        uint64
}

// NewArtifactCache builds a cache from the cache configuration.
func NewArtifactCache(cfg config.CacheConfig) *ArtifactCache {
	return &ArtifactCache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: cfg.MaxEntries,
		ttl:        cfg.TTL,
		lru:        cfg.Eviction == config.EvictionLRU,
	}
}

// OnEvict installs an eviction hook. Call before the cache is shared.
func (c *ArtifactCache) OnEvict(hook func(reason string)) {
	c.onEvict = hook
}

// Get returns the artifact for key, dropping it instead when it has expired.
func (c *ArtifactCache) Get(key string) (*compile.CompiledOperation, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	expired := c.ttl > 0 && time.Now().After(entry.expiresAt)
	op := entry.op
	c.mu.RUnlock()

	if expired {
		c.mu.Lock()
		// Re-check under the write lock; Set may have refreshed the entry.
		if entry, ok := c.entries[key]; ok && time.Now().After(entry.expiresAt) {
			delete(c.entries, key)
			c.notify("ttl")
		}
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		entry.lastAccess = time.Now()
	}
	c.mu.Unlock()
	return op, true
}

// Set stores an artifact, evicting one entry first when the cache is full.
func (c *ArtifactCache) Set(key string, op *compile.CompiledOperation) {
	c.mu.Lock()

	evicted := false
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			evicted = c.evictOne()
		}
	}

	now := time.Now()
	expiresAt := time.Time{}
	if c.ttl > 0 {
		expiresAt = now.Add(c.ttl)
	}
	c.seq++
	c.entries[key] = &cacheEntry{
		op:         op,
		expiresAt:  expiresAt,
		lastAccess: now,
		seq:        c.seq,
	}
	c.mu.Unlock()

	if evicted {
		c.notify("capacity")
	}
}

// Delete removes one entry.
func (c *ArtifactCache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if existed {
		c.notify("invalidate")
	}
}

// Clear removes every entry.
func (c *ArtifactCache) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()

	for i := 0; i < n; i++ {
		c.notify("invalidate")
	}
}

// Size returns the number of cached artifacts.
func (c *ArtifactCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes every expired entry and reports the count.
func (c *ArtifactCache) Sweep() int {
	if c.ttl == 0 {
		return 0
	}

	c.mu.Lock()
	now := time.Now()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	for i := 0; i < removed; i++ {
		c.notify("ttl")
	}
	return removed
}

// Close releases nothing today; it exists so callers can treat all Cache
// implementations uniformly.
func (c *ArtifactCache) Close() {}

// evictOne removes the entry chosen by the eviction policy. Must be called
// with the write lock held.
func (c *ArtifactCache) evictOne() bool {
	if len(c.entries) == 0 {
		return false
	}

	var victim string
	var victimEntry *cacheEntry
	for key, entry := range c.entries {
		if victimEntry == nil || c.older(entry, victimEntry) {
			victim, victimEntry = key, entry
		}
	}
	delete(c.entries, victim)
	return true
}

// older reports whether a should be evicted before b under the policy.
func (c *ArtifactCache) older(a, b *cacheEntry) bool {
	if c.lru {
		return a.lastAccess.Before(b.lastAccess)
	}
	return a.seq < b.seq
}

func (c *ArtifactCache) notify(reason string) {
	if c.onEvict != nil {
		c.onEvict(reason)
	}
}
