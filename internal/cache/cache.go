package cache

import (
	"cmp"
	"slices"
)

// Cache is a generic keyed cache whose entries carry the frame in which
// they were last used.
type Cache[K comparable, V any] struct {
	entries   map[K]*cacheEntry[V]
	softLimit int
	frame     uint64
}

// cacheEntry holds a cached value with the frame it was last used in.
type cacheEntry[V any] struct {
	value V
	frame uint64
}

// Evicted is a key/value pair removed by Sweep or by the soft limit.
type Evicted[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value and marks it used in the current frame.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	entry.frame = c.frame
	return entry.value, true
}

// Peek retrieves a value without marking it used.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores a value in the cache.
// If the cache exceeds softLimit after insertion, the least recently used
// entries are evicted and returned.
func (c *Cache[K, V]) Set(key K, value V) []Evicted[K, V] {
	c.entries[key] = &cacheEntry[V]{
		value: value,
		frame: c.frame,
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		return c.evictOldest(key)
	}
	return nil
}

// DeleteFunc removes every entry for which del returns true.
func (c *Cache[K, V]) DeleteFunc(del func(K, V) bool) []Evicted[K, V] {
	var removed []Evicted[K, V]
	for key, entry := range c.entries {
		if del(key, entry.value) {
			delete(c.entries, key)
			removed = append(removed, Evicted[K, V]{Key: key, Value: entry.value})
		}
	}
	return removed
}

// Advance moves the cache to the next frame.
func (c *Cache[K, V]) Advance() {
	c.frame++
}

// Sweep removes entries not used within the last maxAge frames.
func (c *Cache[K, V]) Sweep(maxAge uint64) []Evicted[K, V] {
	if c.frame < maxAge {
		return nil
	}
	cutoff := c.frame - maxAge
	return c.DeleteFunc(func(key K, _ V) bool {
		return c.entries[key].frame < cutoff
	})
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:      len(c.entries),
		Capacity: c.softLimit,
		Frame:    c.frame,
	}
}

// evictOldest removes the least recently used entries until the cache is
// at three quarters of its soft limit. The entry just stored under keep is
// never evicted.
func (c *Cache[K, V]) evictOldest(keep K) []Evicted[K, V] {
	targetSize := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return nil
	}

	type aged struct {
		key   K
		frame uint64
	}
	candidates := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		if key == keep {
			continue
		}
		candidates = append(candidates, aged{key: key, frame: e.frame})
	}
	slices.SortFunc(candidates, func(a, b aged) int {
		return cmp.Compare(a.frame, b.frame)
	})

	evicted := make([]Evicted[K, V], 0, toEvict)
	for _, cand := range candidates[:min(toEvict, len(candidates))] {
		evicted = append(evicted, Evicted[K, V]{Key: cand.key, Value: c.entries[cand.key].value})
		delete(c.entries, cand.key)
	}
	return evicted
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit, 0 when unlimited.
	Capacity int
	// Frame is the current frame.
	Frame uint64
}
