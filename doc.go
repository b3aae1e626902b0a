// Package lru implements a fixed-capacity [Cache] which evicts
// the least recently used entry when a new key must be admitted.
//
// The following is a summary intended for maintainers.
//
// Structure:
//
//   - Index
//
//     Map from key to the entry's element in the order ring.
//
//   - Order
//
//     Circular doubly linked list rooted at a sentinel.
//     The element after the sentinel is the least recently used (front),
//     the element before it is the most recently used (back).
//
// Invariants (checked after every mutation when built with `-tags lru_debug`):
//
//   - len(index) == number of ordered elements.
//
//   - len(index) <= capacity.
//
//   - Every ordered key is indexed, and indexed to that same element.
//     So no key is ordered twice and neither structure holds orphans.
//
// Operations:
//
//   - Promotion
//
//     A hit from Get, or a Set of a resident key, moves the
//     key's element to the back. Set does not replace the
//     value of a resident key; only its recency changes.
//
//   - Eviction
//
//     Set of a new key while full removes the front element
//     from both structures before inserting at the back.
//
// All operations are O(1).
//
// Events are reported to an optional [Observer]
// (see the lruslog package for a log/slog adapter).
package lru
