/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import (
	"container/list"
	"fmt"
	"sync"
)

// MetricsCollector receives statistics about the cache content.
type MetricsCollector interface {
	// SetAmount sets the total number of entries in the cache.
	SetAmount(int)

	// AddEvictions increments the total number of evicted entries.
	AddEvictions(int)
}

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a goroutine-safe map bounded by the number of entries.
// When the limit is exceeded, the least recently used entry is evicted.
type LRUCache[K comparable, V any] struct {
	maxEntries int

	mu      sync.Mutex
	lruList *list.List
	entries map[K]*list.Element

	metricsCollector MetricsCollector
}

// New creates a new LRUCache with the provided maximum number of entries.
// Metrics collector may be nil, in this case, metrics are disabled.
func New[K comparable, V any](maxEntries int, metricsCollector MetricsCollector) (*LRUCache[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("max entries must be greater than 0, got %d", maxEntries)
	}
	if metricsCollector == nil {
		metricsCollector = disabledMetrics{}
	}
	return &LRUCache[K, V]{
		maxEntries:       maxEntries,
		lruList:          list.New(),
		entries:          make(map[K]*list.Element),
		metricsCollector: metricsCollector,
	}, nil
}

// Get returns a value by the provided key and marks it as recently used.
func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return value, false
	}
	c.lruList.MoveToFront(elem)
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// GetOrAdd returns a value by the provided key.
// If the key does not exist, the value is created by valueProvider and added to the cache.
// valueProvider is called under the cache lock and must not access the cache.
func (c *LRUCache[K, V]) GetOrAdd(key K, valueProvider func() V) (value V, exists bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lruList.MoveToFront(elem)
		return elem.Value.(*cacheEntry[K, V]).value, true
	}

	value = valueProvider()
	c.entries[key] = c.lruList.PushFront(&cacheEntry[K, V]{key: key, value: value})
	if len(c.entries) > c.maxEntries {
		c.removeOldest()
		c.metricsCollector.AddEvictions(1)
	}
	c.metricsCollector.SetAmount(len(c.entries))
	return value, false
}

// Remove removes a value by the provided key. It reports whether the key was present.
func (c *LRUCache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lruList.Remove(elem)
	delete(c.entries, key)
	c.metricsCollector.SetAmount(len(c.entries))
	return true
}

// Purge removes all entries. Removed entries are not counted as evictions.
func (c *LRUCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element)
	c.lruList.Init()
	c.metricsCollector.SetAmount(0)
}

// Len returns the number of entries in the cache.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRUCache[K, V]) removeOldest() {
	elem := c.lruList.Back()
	if elem == nil {
		return
	}
	c.lruList.Remove(elem)
	delete(c.entries, elem.Value.(*cacheEntry[K, V]).key)
}

type disabledMetrics struct{}

func (disabledMetrics) SetAmount(int)    {}
func (disabledMetrics) AddEvictions(int) {}
