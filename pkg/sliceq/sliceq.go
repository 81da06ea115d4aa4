// Package sliceq provides a deliberately naive bounded deque backed by a
// plain slice. Front operations shift the whole slice, so it is O(n) where
// a ring buffer is O(1).
//
// It exists as a reference implementation: the bench harness runs it as
// the baseline to quantify what the ring layout buys, and the randomized
// tests use it as the oracle that a RingBuf must agree with after any
// sequence of operations. Its full/empty semantics are identical to
// ringbuf: a push onto a full deque is refused, never absorbed by growth.
package sliceq

import "errors"

// ErrCapacityExceeded is returned by PushBack and PushFront when the
// deque already holds Cap() elements.
var ErrCapacityExceeded = errors.New("sliceq: capacity exceeded")

// SliceQueue is a bounded double-ended queue over a plain slice. The slice
// holds the elements in logical front-to-back order at all times.
type SliceQueue[T any] struct {
	elems    []T
	capacity int
}

// New creates an empty SliceQueue with the given fixed capacity. A
// negative capacity panics, matching ringbuf.New.
func New[T any](capacity int) *SliceQueue[T] {
	if capacity < 0 {
		panic("sliceq: negative capacity")
	}
	return &SliceQueue[T]{
		elems:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of elements currently held.
func (q *SliceQueue[T]) Len() int {
	return len(q.elems)
}

// Cap returns the fixed capacity.
func (q *SliceQueue[T]) Cap() int {
	return q.capacity
}

// IsEmpty reports whether the deque holds no elements.
func (q *SliceQueue[T]) IsEmpty() bool {
	return len(q.elems) == 0
}

// IsFull reports whether the deque cannot accept another push.
func (q *SliceQueue[T]) IsFull() bool {
	return len(q.elems) == q.capacity
}

// PushBack appends val at the back, or returns ErrCapacityExceeded when full.
func (q *SliceQueue[T]) PushBack(val T) error {
	if len(q.elems) == q.capacity {
		return ErrCapacityExceeded
	}
	q.elems = append(q.elems, val)
	return nil
}

// PushFront inserts val at the front, or returns ErrCapacityExceeded when
// full. Shifts every element one position back.
func (q *SliceQueue[T]) PushFront(val T) error {
	if len(q.elems) == q.capacity {
		return ErrCapacityExceeded
	}
	var zero T
	q.elems = append(q.elems, zero)
	copy(q.elems[1:], q.elems)
	q.elems[0] = val
	return nil
}

// PopFront removes and returns the front element, or (zero, false) when empty.
func (q *SliceQueue[T]) PopFront() (T, bool) {
	var zero T
	if len(q.elems) == 0 {
		return zero, false
	}
	val := q.elems[0]
	copy(q.elems, q.elems[1:])
	q.elems[len(q.elems)-1] = zero
	q.elems = q.elems[:len(q.elems)-1]
	return val, true
}

// PopBack removes and returns the back element, or (zero, false) when empty.
func (q *SliceQueue[T]) PopBack() (T, bool) {
	var zero T
	if len(q.elems) == 0 {
		return zero, false
	}
	val := q.elems[len(q.elems)-1]
	q.elems[len(q.elems)-1] = zero
	q.elems = q.elems[:len(q.elems)-1]
	return val, true
}

// Front peeks at the front element without removing it.
func (q *SliceQueue[T]) Front() (T, bool) {
	if len(q.elems) == 0 {
		var zero T
		return zero, false
	}
	return q.elems[0], true
}

// Back peeks at the back element without removing it.
func (q *SliceQueue[T]) Back() (T, bool) {
	if len(q.elems) == 0 {
		var zero T
		return zero, false
	}
	return q.elems[len(q.elems)-1], true
}

// Elems returns the logical content front-to-back. The returned slice is
// a copy; mutating it does not affect the deque.
func (q *SliceQueue[T]) Elems() []T {
	out := make([]T, len(q.elems))
	copy(out, q.elems)
	return out
}
