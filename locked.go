package lru

import (
	"slices"
	"sync"
)

// Locked guards a [Cache] with a single mutex
// so that it may be shared between goroutines.
// Observers of the wrapped cache are called with the lock held.
type Locked[Key comparable, Value any] struct {
	mu    sync.Mutex
	cache *Cache[Key, Value]
}

// NewLocked wraps cache. The caller must not
// use cache directly after this call.
func NewLocked[Key comparable, Value any](cache *Cache[Key, Value]) *Locked[Key, Value] {
	return &Locked[Key, Value]{cache: cache}
}

// Get is the synchronized form of [Cache.Get].
func (l *Locked[Key, Value]) Get(key Key) (Value, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Get(key)
}

// Set is the synchronized form of [Cache.Set].
func (l *Locked[Key, Value]) Set(key Key, value Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Set(key, value)
}

// Load is the synchronized form of [Cache.Load].
// The lock is not held while fetch runs, so concurrent
// misses of the same key may each call fetch;
// the first value stored is the one retained.
func (l *Locked[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := l.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Set(key, value)
	if stored, ok := l.cache.index[key]; ok {
		value = stored.Value
	}
	return value, nil
}

// Len is the synchronized form of [Cache.Len].
func (l *Locked[_, _]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}

// Capacity returns the capacity of the wrapped cache.
func (l *Locked[_, _]) Capacity() int {
	return l.cache.Capacity()
}

// Keys returns a snapshot of the resident keys,
// from least to most recently used.
func (l *Locked[Key, _]) Keys() []Key {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Collect(l.cache.Keys())
}
