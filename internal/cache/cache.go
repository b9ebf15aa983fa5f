// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a random-replacement cache to memoize compiled
// format layouts.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultSize is the size used by a Cache with a zero MaxSize.
const DefaultSize = 1 << 10

// Cache maps keys to values computed on first use. When the total size of its
// values exceeds MaxSize, arbitrary entries are evicted, relying on the
// randomized iteration order of Go maps.
//
// Its zero value is ready to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize bounds the total size of the values. Values implementing Sizer
	// report their own size, all others count as 1. It must not be changed
	// after the first call to Get.
	MaxSize int64

	mu sync.RWMutex
	m  map[K]V
	n  int64

	hits, misses atomic.Uint64
}

// Sizer is implemented by values reporting their own size. The size must be
// positive and must not change.
type Sizer interface {
	Size() int64
}

// Get returns the value for k, calling fill to produce it if it is missing.
// fill runs without holding a lock, so under contention it may run more than
// once for the same key; the first stored value wins.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	c.n += sizeOf(nv)
	for old := range c.m {
		if c.n <= c.maxSize() {
			break
		}
		if old != k {
			c.evictLocked(old)
		}
	}
	return nv
}

func (c *Cache[K, V]) maxSize() int64 {
	if c.MaxSize <= 0 {
		return DefaultSize
	}
	return c.MaxSize
}

// Evict removes the value for k, if any.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked(k)
}

// c.mu must be held for writing.
func (c *Cache[K, V]) evictLocked(k K) {
	if v, ok := c.m[k]; ok {
		delete(c.m, k)
		c.n -= sizeOf(v)
	}
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Size returns the total size of the cached values.
func (c *Cache[K, V]) Size() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.n
}

// Stats returns the number of calls to Get answered from the cache and the
// number that had to call fill.
func (c *Cache[K, V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Flush removes all values and resets the statistics.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
	c.n = 0
	c.hits.Store(0)
	c.misses.Store(0)
}

func sizeOf[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}
