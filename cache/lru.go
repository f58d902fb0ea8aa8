package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUQueryCache bounds the rendered-SQL cache to a fixed number of entries,
// evicting the least recently used.
type LRUQueryCache struct {
	entries *lru.Cache[uint64, string]
}

func NewLRUQueryCache(size int) (*LRUQueryCache, error) {
	entries, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, err
	}
	return &LRUQueryCache{entries: entries}, nil
}

func (c *LRUQueryCache) Get(f uint64) (string, bool) {
	return c.entries.Get(f)
}

func (c *LRUQueryCache) Set(f uint64, sql string) {
	c.entries.Add(f, sql)
}

func (c *LRUQueryCache) Len() int {
	return c.entries.Len()
}

func (c *LRUQueryCache) Purge() {
	c.entries.Purge()
}

var _ QueryCache = (*LRUQueryCache)(nil)
