package cache

import (
	"sync"
)

// QueryCache maps statement fingerprints to rendered SQL text. Fingerprints
// are consistent with structural equality, so equal statements share one
// entry regardless of where they were built.
type QueryCache interface {
	Get(fingerprint uint64) (string, bool)
	Set(fingerprint uint64, sql string)
}

type memQueryCache struct {
	mu   sync.RWMutex
	data map[uint64]string
}

// NewQueryCache returns an unbounded in-memory cache. Suitable for
// deployments with a fixed statement set; use NewLRUQueryCache when the set
// is open-ended.
func NewQueryCache() QueryCache {
	return &memQueryCache{
		data: make(map[uint64]string, 64),
	}
}

func (c *memQueryCache) Get(f uint64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sql, ok := c.data[f]
	return sql, ok
}

func (c *memQueryCache) Set(f uint64, sql string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[f] = sql
}
