package cache

import (
	"sync"
	"time"
)

type page struct {
	body []byte
	exp  time.Time
}

// Cache holds rendered pages keyed by layout name until their TTL expires.
type Cache struct {
	mu    sync.RWMutex
	pages map[string]page
	ttl   time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		pages: make(map[string]page),
		ttl:   ttl,
	}
}

func (c *Cache) GetPage(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.pages[key]
	if !ok || time.Now().After(p.exp) {
		return nil, false
	}
	return p.body, true
}

func (c *Cache) SetPage(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[key] = page{
		body: body,
		exp:  time.Now().Add(c.ttl),
	}
}

func (c *Cache) InvalidatePage(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pages, key)
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pages)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
