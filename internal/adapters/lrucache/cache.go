package lrucache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache implements ports.CacheService with a fixed-size in-memory LRU.
type Cache struct {
	lru *lru.Cache[string, string]
}

// New creates a cache holding at most size entries.
func New(size int) (*Cache, error) {
	l, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("lru cache: %w", err)
	}
	return &Cache{lru: l}, nil
}

// Get retrieves a value by key.
func (c *Cache) Get(key string) (string, bool) {
	return c.lru.Get(key)
}

// Set stores a value, evicting the least recently used entry when full.
func (c *Cache) Set(key, value string) {
	c.lru.Add(key, value)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
