// Package metered instruments an LRU cache with Prometheus metrics.
package metered

import (
	"time"

	"github.com/djdv/go-lru"
	"github.com/prometheus/client_golang/prometheus"
)

// Cacher is the subset of cache behaviour that is instrumented.
// It is satisfied by [lru.Cache] and [lru.Locked].
type Cacher[Key comparable, Value any] interface {
	Get(key Key) (Value, bool)
	Set(key Key, value Value)
	Len() int
	Capacity() int
}

var (
	_ Cacher[struct{}, struct{}] = (*lru.Cache[struct{}, struct{}])(nil)
	_ Cacher[struct{}, struct{}] = (*lru.Locked[struct{}, struct{}])(nil)
)

// Cache wraps a Cacher with metrics.
type Cache[Key comparable, Value any] struct {
	Cacher[Key, Value]
	metrics *metrics
}

// New wraps cache, registering metrics with registerer under namespace.
// Evictions are not visible to a wrapped cache and are left at zero;
// use [NewObserved] to count them.
//
// The returned cache is usable even if registration fails.
func New[Key comparable, Value any](
	namespace string,
	registerer prometheus.Registerer,
	cache Cacher[Key, Value],
) (*Cache[Key, Value], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Cache[Key, Value]{
		Cacher:  cache,
		metrics: metrics,
	}, err
}

func (c *Cache[Key, Value]) evictionObserver() lru.Observer[Key, Value] {
	return lru.ObserverFuncs[Key, Value]{
		OnEvicted: func(Key) { c.metrics.evictions.Inc() },
	}
}

// NewObserved constructs an [lru.Cache] whose evictions are counted,
// relaying every event to observer as well (which may be nil).
func NewObserved[Key comparable, Value any](
	namespace string,
	registerer prometheus.Registerer,
	capacity int,
	observer lru.Observer[Key, Value],
) (*Cache[Key, Value], error) {
	metrics, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	c := &Cache[Key, Value]{metrics: metrics}
	cache, err := lru.NewObserved(capacity, lru.Observers(observer, c.evictionObserver()))
	if err != nil {
		return nil, err
	}
	c.Cacher = cache
	return c, nil
}

func (c *Cache[Key, Value]) Set(key Key, value Value) {
	start := time.Now()
	c.Cacher.Set(key, value)
	setDuration := time.Since(start)

	c.metrics.setCount.Inc()
	c.metrics.setTime.Add(float64(setDuration))
	c.updateFill()
}

func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	start := time.Now()
	value, has := c.Cacher.Get(key)
	getDuration := time.Since(start)

	if has {
		c.metrics.getCount.With(hitLabels).Inc()
		c.metrics.getTime.With(hitLabels).Add(float64(getDuration))
	} else {
		c.metrics.getCount.With(missLabels).Inc()
		c.metrics.getTime.With(missLabels).Add(float64(getDuration))
	}
	return value, has
}

func (c *Cache[_, _]) updateFill() {
	length := c.Cacher.Len()
	c.metrics.len.Set(float64(length))
	c.metrics.portionFilled.Set(float64(length) / float64(c.Cacher.Capacity()))
}
