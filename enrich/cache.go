package enrich

import "sync"

// cache is a concurrency-safe memo store. Entries are never evicted;
// consumers only get getOrFetch and clear, never the map itself.
type cache[T any] struct {
	mu      sync.Mutex
	entries map[string]T
}

func newCache[T any]() *cache[T] {
	return &cache[T]{entries: map[string]T{}}
}

// getOrFetch returns the cached value for key, calling fetch on a miss.
// The result is stored only when fetch reports ok: a failed lookup is
// returned to the caller but retried on the next request for the key.
// Last write wins when callers race on one key.
func (c *cache[T]) getOrFetch(key string, fetch func() (T, bool)) T {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v, ok := fetch()
	if !ok {
		return v
	}

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v
}

func (c *cache[T]) clear() {
	c.mu.Lock()
	c.entries = map[string]T{}
	c.mu.Unlock()
}
