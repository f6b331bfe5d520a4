package prompts

import "sync"

// Cache is an insert-only template cache keyed by name and version.
// Entries live for the process lifetime; there is no TTL or eviction,
// only wholesale Clear. Concurrent inserts for the same key race to an
// equivalent value, so last-writer-wins is harmless.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached template for key, if present.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	template, ok := c.entries[key]
	return template, ok
}

// Insert stores a template under key.
func (c *Cache) Insert(key, template string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = template
}

// Clear drops all cached templates.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
