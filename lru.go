package lru

import (
	"iter"

	"github.com/djdv/go-lru/internal/ring"
)

type (
	entry[Key comparable, Value any] = ring.Ring[Key, Value]
	// Cache evicts the least recently used entry when full.
	// Concurrent access must be guarded by the caller (see [Locked]).
	// Constructed by [New], [NewObserved], or [NewFrom].
	Cache[Key comparable, Value any] struct {
		index    map[Key]*entry[Key, Value]
		order    *entry[Key, Value] // Sentinel; Next is LRU, Prev is MRU.
		observer Observer[Key, Value]
		capacity int
	}
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] with the given capacity.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	return NewObserved[Key, Value](capacity, nil)
}

// NewObserved creates a [Cache] which reports its events to observer.
// A nil observer is valid and discards all events.
func NewObserved[Key comparable, Value any](capacity int, observer Observer[Key, Value]) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	if observer == nil {
		observer = nopObserver[Key, Value]{}
	}
	return &Cache[Key, Value]{
		index:    make(map[Key]*entry[Key, Value], capacity),
		order:    ring.New[Key, Value](),
		observer: observer,
		capacity: capacity,
	}, nil
}

// NewFrom creates an observed [Cache] pre-populated with entries,
// which are yielded from least to most recently used
// (the order produced by [Cache.All]).
// Seeding does not emit events.
// A key yielded twice, or more entries than capacity,
// results in an error wrapping [ErrInvalidSeed].
func NewFrom[Key comparable, Value any](
	capacity int, observer Observer[Key, Value],
	entries iter.Seq2[Key, Value],
) (*Cache[Key, Value], error) {
	cache, err := NewObserved(capacity, observer)
	if err != nil {
		return nil, err
	}
	for key, value := range entries {
		if _, found := cache.index[key]; found {
			return nil, duplicateSeedError(key)
		}
		if cache.atCapacity() {
			return nil, overfullSeedError(capacity)
		}
		cache.insert(key, value)
	}
	cache.checkInvariants()
	return cache, nil
}

// Load returns the cached value for key (if resident). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Get returns the Value for key if it is resident
// in the cache, and marks it as most recently used;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	element, ok := c.index[key]
	if !ok {
		var zero Value
		return zero, false
	}
	c.observer.Accessed(element.Value)
	c.promote(element)
	return element.Value, true
}

// Set marks key as most recently used,
// inserting it with value if it is not resident.
// The value of a resident key is left unchanged.
// If the cache is full, the least recently used entry is evicted first.
func (c *Cache[Key, Value]) Set(key Key, value Value) {
	if element, ok := c.index[key]; ok {
		c.promote(element)
		return
	}
	if c.atCapacity() {
		c.evict()
	}
	c.insert(key, value)
	c.observer.Added(key, value)
	c.checkInvariants()
}

func (c *Cache[_, _]) atCapacity() bool {
	return len(c.index) >= c.capacity
}

func (c *Cache[Key, Value]) promote(element *entry[Key, Value]) {
	c.order.MoveToBack(element)
	c.observer.Promoted(element.Key)
	c.checkInvariants()
}

func (c *Cache[Key, Value]) insert(key Key, value Value) {
	element := &entry[Key, Value]{Key: key, Value: value}
	c.order.PushBack(element)
	c.index[key] = element
}

// evict discards the least recently used entry.
func (c *Cache[_, _]) evict() {
	lru := c.order.PopFront()
	if debugging {
		assert(lru != nil, "evicting from an empty cache")
	}
	delete(c.index, lru.Key)
	c.observer.Evicted(lru.Key)
}

func (c *Cache[_, _]) checkInvariants() {
	if !debugging {
		return
	}
	var (
		indexed = len(c.index)
		ordered = c.order.Len() - 1 // Excluding sentinel.
	)
	assert(indexed == ordered, "index and order sizes differ")
	assert(indexed <= c.capacity, "cache exceeds capacity")
	for element := range c.order.Elements() {
		indexedElement, ok := c.index[element.Key]
		assert(ok, "ordered key missing from index")
		assert(indexedElement == element, "key ordered more than once")
	}
}

// Len returns the number of resident entries.
func (c *Cache[_, _]) Len() int {
	return len(c.index)
}

// Capacity returns the maximum number of resident entries.
func (c *Cache[_, _]) Capacity() int {
	return c.capacity
}

// Keys returns an iterator over the resident keys,
// from least to most recently used.
// Iteration does not affect recency.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for element := range c.order.Elements() {
			if !yield(element.Key) {
				return
			}
		}
	}
}

// All returns an iterator over the resident entries,
// from least to most recently used.
// Iteration does not affect recency.
func (c *Cache[Key, Value]) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for element := range c.order.Elements() {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}
