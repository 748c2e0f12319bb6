// Package pagecache keeps rendered page bodies keyed by route path, so a
// listing is rebuilt only after a mutation invalidates it.
package pagecache

import "sync"

type Cache struct {
	mu    sync.RWMutex
	pages map[string][]byte
}

func New() *Cache {
	return &Cache{pages: make(map[string][]byte)}
}

func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.pages[path]

	return body, ok
}

func (c *Cache) Set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[path] = body
}

// Invalidate marks any cached render of the path as stale. Invalidating a
// path that was never cached is a no-op.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.pages, path)
}
