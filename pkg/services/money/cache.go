package money

import (
	"sync"

	"github.com/shopspring/decimal"
)

const DefaultCacheCapacity = 4096

// Cache memoizes string parses. Retention is not a correctness
// concern, so instead of an LRU the whole map is dropped once it grows
// past capacity. Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]decimal.Decimal
	capacity int
}

func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		entries:  make(map[string]decimal.Decimal),
		capacity: capacity,
	}
}

func (c *Cache) get(key string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[key]
	return d, ok
}

func (c *Cache) put(key string, d decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[string]decimal.Decimal)
	}
	c.entries[key] = d
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
