package lru

// Observer receives cache events.
// Calls are made synchronously from within the cache operation
// that caused them; implementations must not call back into the cache.
// Nothing an Observer does affects the cache's state.
type Observer[Key comparable, Value any] interface {
	// Accessed is called when [Cache.Get] hits.
	Accessed(value Value)
	// Promoted is called when a resident key is
	// moved to the most recently used position.
	Promoted(key Key)
	// Evicted is called when the least recently used key
	// is discarded to make room for a new one.
	Evicted(key Key)
	// Added is called when a new entry becomes resident.
	Added(key Key, value Value)
}

type (
	// ObserverFuncs adapts individual functions to an [Observer].
	// Nil fields are skipped.
	ObserverFuncs[Key comparable, Value any] struct {
		OnAccessed func(Value)
		OnPromoted func(Key)
		OnEvicted  func(Key)
		OnAdded    func(Key, Value)
	}
	observers[Key comparable, Value any] []Observer[Key, Value]
	nopObserver[Key comparable, Value any] struct{}
)

var (
	_ Observer[int, int] = ObserverFuncs[int, int]{}
	_ Observer[int, int] = observers[int, int](nil)
	_ Observer[int, int] = nopObserver[int, int]{}
)

func (of ObserverFuncs[_, Value]) Accessed(value Value) {
	if of.OnAccessed != nil {
		of.OnAccessed(value)
	}
}

func (of ObserverFuncs[Key, _]) Promoted(key Key) {
	if of.OnPromoted != nil {
		of.OnPromoted(key)
	}
}

func (of ObserverFuncs[Key, _]) Evicted(key Key) {
	if of.OnEvicted != nil {
		of.OnEvicted(key)
	}
}

func (of ObserverFuncs[Key, Value]) Added(key Key, value Value) {
	if of.OnAdded != nil {
		of.OnAdded(key, value)
	}
}

// Observers returns an [Observer] that relays
// each event to all of the given observers, in order.
// Nil observers are dropped.
func Observers[Key comparable, Value any](list ...Observer[Key, Value]) Observer[Key, Value] {
	relay := make(observers[Key, Value], 0, len(list))
	for _, observer := range list {
		if observer != nil {
			relay = append(relay, observer)
		}
	}
	return relay
}

func (os observers[_, Value]) Accessed(value Value) {
	for _, o := range os {
		o.Accessed(value)
	}
}

func (os observers[Key, _]) Promoted(key Key) {
	for _, o := range os {
		o.Promoted(key)
	}
}

func (os observers[Key, _]) Evicted(key Key) {
	for _, o := range os {
		o.Evicted(key)
	}
}

func (os observers[Key, Value]) Added(key Key, value Value) {
	for _, o := range os {
		o.Added(key, value)
	}
}

func (nopObserver[_, Value]) Accessed(Value) {}
func (nopObserver[Key, _]) Promoted(Key) {}
func (nopObserver[Key, _]) Evicted(Key) {}
func (nopObserver[Key, Value]) Added(Key, Value) {}
