// Package cache provides a lazily populated, concurrency-safe memo table.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolver produces the value for a key. The boolean reports whether the key
// exists; a false result is not cached and the next lookup resolves again.
type Resolver[K comparable, V any] func(key K) (V, bool)

// Cache memoizes resolved values. Concurrent lookups of the same missing key
// share one resolver call. In-flight lookups are keyed by the Go-syntax
// rendering of K (%#v), so distinct keys must render distinctly; this holds
// for numbers, strings and structs or arrays of them, not for pointers to
// equal values or NaN floats.
type Cache[K comparable, V any] struct {
	resolve Resolver[K, V]

	mu     sync.RWMutex
	values map[K]V

	group singleflight.Group
}

// New creates an empty cache backed by resolve
func New[K comparable, V any](resolve Resolver[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		resolve: resolve,
		values:  make(map[K]V),
	}
}

type result[V any] struct {
	value V
	found bool
}

// Get returns the cached value for key, resolving it on first use
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v, true
	}

	shared, _, _ := c.group.Do(flightKey(key), func() (interface{}, error) {
		c.mu.RLock()
		v, ok := c.values[key]
		c.mu.RUnlock()
		if ok {
			return result[V]{value: v, found: true}, nil
		}

		v, ok = c.resolve(key)
		if ok {
			c.mu.Lock()
			c.values[key] = v
			c.mu.Unlock()
		}
		return result[V]{value: v, found: ok}, nil
	})

	r := shared.(result[V])
	return r.value, r.found
}

func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%#v", key)
}

// Put stores a value directly, bypassing the resolver
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()
}

// Len returns the number of cached values
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Clear drops every cached value
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	c.values = make(map[K]V)
	c.mu.Unlock()
}
