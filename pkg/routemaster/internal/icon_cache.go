package internal

import (
	"image"
	"sync"
)

const defaultMaxCacheSize = 5

// IconCache keeps the most recently rasterized icons keyed by a caller-chosen
// string, evicting the least recently used entry once full.
type IconCache struct {
	mu      sync.Mutex
	icons   map[string]*image.RGBA
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxCacheSize)
}

func NewIconCacheWithSize(maxSize int) *IconCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &IconCache{
		icons:   make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *IconCache) Get(key string) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if icon, exists := c.icons[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return icon
	}
	return nil
}

func (c *IconCache) Set(key string, icon *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.icons[key]; exists {
		c.icons[key] = icon
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.icons[key] = icon
	c.order = append(c.order, key)
}

func (c *IconCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}

func (c *IconCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.icons = make(map[string]*image.RGBA)
	c.order = c.order[:0]
}
