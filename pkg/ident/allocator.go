// Package ident provides monotonic ID allocation for gamekit objects
// that need stable identities, such as managed triggers.
package ident

// ID is a unique identifier handed out by an Allocator.
type ID uint64

// Allocator hands out monotonically increasing IDs, optionally bounded
// to [start, end). It is not safe for concurrent use.
type Allocator struct {
	next    ID
	end     ID
	bounded bool
}

// New returns an unbounded allocator starting at start.
func New(start ID) *Allocator {
	return &Allocator{next: start}
}

// NewBounded returns an allocator over [start, end). It panics when
// start is not below end.
func NewBounded(start, end ID) *Allocator {
	if start >= end {
		panic("ident: allocator range start must be below end")
	}
	return &Allocator{next: start, end: end, bounded: true}
}

// Next allocates the next available ID. The second return is false
// when the allocator is exhausted.
func (a *Allocator) Next() (ID, bool) {
	if a.Exhausted() {
		return 0, false
	}
	id := a.next
	a.next++
	return id, true
}

// Reserve claims a specific ID and advances the allocator past it, so
// later Next calls never collide with it. Reserving an ID the
// allocator has already passed returns it without moving the cursor.
func (a *Allocator) Reserve(id ID) (ID, bool) {
	if a.Exhausted() {
		return 0, false
	}
	if a.next <= id {
		a.next = id + 1
	}
	return id, true
}

// Exhausted reports whether a bounded allocator has no IDs left.
func (a *Allocator) Exhausted() bool {
	return a.bounded && a.next >= a.end
}
