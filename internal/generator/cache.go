package generator

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"ecom-dashboard/internal/models"
)

// Cache memoizes generated datasets by (months, seed). Each dataset is
// written exactly once and read-only afterwards; concurrent callers for
// the same key share one generation via singleflight.
type Cache struct {
	mu       sync.RWMutex
	datasets map[string]models.Dataset
	group    singleflight.Group
}

func NewCache() *Cache {
	return &Cache{datasets: make(map[string]models.Dataset)}
}

// Get returns the memoized dataset for (months, seed), generating it on
// first use.
func (c *Cache) Get(months int, seed uint64) models.Dataset {
	key := fmt.Sprintf("%d:%d", months, seed)

	c.mu.RLock()
	ds, ok := c.datasets[key]
	c.mu.RUnlock()
	if ok {
		return ds
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		ds := Generate(months, seed)
		c.mu.Lock()
		c.datasets[key] = ds
		c.mu.Unlock()
		return ds, nil
	})
	return v.(models.Dataset)
}

// Len reports how many datasets are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.datasets)
}
