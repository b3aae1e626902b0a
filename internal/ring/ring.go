// Package ring is a specialized adaption of `container/ring`
// used as the recency order of an LRU cache.
package ring

import "iter"

// A Ring is an element of a circular list, or ring.
// Every element carries the key and value of one cache entry.
//
// A ring returned by [New] acts as a sentinel (root):
// its own Key and Value are unused, root.Next() is the
// least recently used element and root.Prev() the most recently used.
// The zero value for a Ring is a one-element ring.
type Ring[Key comparable, Value any] struct {
	next, prev *Ring[Key, Value]
	Key        Key
	Value      Value
}

// New returns an empty sentinel ring.
func New[Key comparable, Value any]() *Ring[Key, Value] {
	return new(Ring[Key, Value]).init()
}

func (r *Ring[Key, Value]) init() *Ring[Key, Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be nil.
func (r *Ring[Key, Value]) Next() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be nil.
func (r *Ring[Key, Value]) Prev() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Alone reports whether r is the only element of its ring.
// For a sentinel this means the list is empty.
func (r *Ring[Key, Value]) Alone() bool {
	return r.Next() == r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be nil.
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// The removed elements form a subring and the result is a
// reference to that subring.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r.
func (r *Ring[Key, Value]) Link(s *Ring[Key, Value]) *Ring[Key, Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Detach removes r from the ring it belongs to
// and returns it as a one-element ring.
// Detaching a one-element ring is a no-op.
func (r *Ring[Key, Value]) Detach() *Ring[Key, Value] {
	if r.Alone() {
		return r
	}
	return r.prev.Link(r.next)
}

// PushBack inserts the one-element ring e before r.
// With r as sentinel, e becomes the most recently used element.
func (r *Ring[Key, Value]) PushBack(e *Ring[Key, Value]) {
	r.Prev().Link(e)
}

// MoveToBack places e, which must already be in the ring of r,
// directly before r.
func (r *Ring[Key, Value]) MoveToBack(e *Ring[Key, Value]) {
	if e == r || e.next == r {
		return
	}
	r.PushBack(e.Detach())
}

// PopFront detaches and returns the element after r,
// or nil if r is alone.
func (r *Ring[Key, Value]) PopFront() *Ring[Key, Value] {
	if r.Alone() {
		return nil
	}
	return r.next.Detach()
}

// Len computes the number of elements in ring r, including r.
// It executes in time proportional to the number of elements.
func (r *Ring[Key, Value]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Elements returns an iterator over every element after r
// up to (and excluding) r itself.
// The ring must not be modified during iteration.
func (r *Ring[Key, Value]) Elements() iter.Seq[*Ring[Key, Value]] {
	return func(yield func(*Ring[Key, Value]) bool) {
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
