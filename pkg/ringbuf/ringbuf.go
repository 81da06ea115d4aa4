// Package ringbuf implements a fixed-capacity, allocation-stable
// double-ended ring buffer.
//
// The backing storage is allocated once at construction and never grows.
// A push onto a full buffer is refused with ErrCapacityExceeded instead of
// silently overwriting the oldest element, so "buffer full" is always an
// observable condition for the caller. Pops and peeks on an empty buffer
// report absence via a comma-ok result.
//
// A RingBuf is single-owner: it performs no internal locking, and callers
// that share one across goroutines must provide their own synchronization.
// Within one owner, at most one mutable view (FrontMut, BackMut, AtMut or
// a live RingIterMut) may be outstanding at a time, and it must not be
// used alongside any other access into the same buffer.
package ringbuf

import (
	"github.com/i5heu/GoRingBuf/internal/ringmath"
)

// RingBuf is a bounded FIFO/LIFO-capable sequence of elements of type T.
//
// Logical order is front-to-back and independent of where the elements sit
// physically: the live elements occupy the physical slots
// (head+0)..(head+length-1) modulo capacity.
type RingBuf[T any] struct {
	data   []T // backing storage, len(data) == capacity, fixed for the buffer's lifetime
	head   int // physical index of the logical front element; meaningless while empty
	length int // number of live elements, 0 <= length <= capacity
}

// New creates an empty RingBuf with the given fixed capacity.
//
// A capacity of zero is legal and yields a buffer that is simultaneously
// always empty and always full: every push fails with ErrCapacityExceeded
// and every pop or peek reports absence. A negative capacity panics.
func New[T any](capacity int) *RingBuf[T] {
	if capacity < 0 {
		panic("ringbuf: negative capacity")
	}
	return &RingBuf[T]{
		data: make([]T, capacity),
	}
}

// FromSlice creates a full RingBuf whose capacity equals len(elems) and
// whose logical front-to-back order is the slice order. The slice is
// copied; the caller keeps ownership of the original.
func FromSlice[T any](elems []T) *RingBuf[T] {
	data := make([]T, len(elems))
	copy(data, elems)
	return &RingBuf[T]{
		data:   data,
		length: len(data),
	}
}

// Len returns the number of live elements.
func (b *RingBuf[T]) Len() int {
	return b.length
}

// Cap returns the fixed capacity chosen at construction.
func (b *RingBuf[T]) Cap() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *RingBuf[T]) IsEmpty() bool {
	return b.length == 0
}

// IsFull reports whether the buffer cannot accept another push.
func (b *RingBuf[T]) IsFull() bool {
	return b.length == len(b.data)
}

// PushBack appends val as the new logical back element.
//
// If the buffer is full it returns ErrCapacityExceeded and the buffer is
// left exactly as it was; the value remains with the caller.
func (b *RingBuf[T]) PushBack(val T) error {
	if b.length == len(b.data) {
		return ErrCapacityExceeded
	}
	b.data[ringmath.Physical(b.head, len(b.data), b.length)] = val
	b.length++
	return nil
}

// PushFront inserts val as the new logical front element.
//
// If the buffer is full it returns ErrCapacityExceeded and the buffer is
// left exactly as it was; the value remains with the caller.
func (b *RingBuf[T]) PushFront(val T) error {
	if b.length == len(b.data) {
		return ErrCapacityExceeded
	}
	b.head = ringmath.Retreat(b.head, len(b.data))
	b.data[b.head] = val
	b.length++
	return nil
}

// PopFront removes and returns the logical front element. It returns
// (zero, false) when the buffer is empty.
func (b *RingBuf[T]) PopFront() (T, bool) {
	var zero T
	if b.length == 0 {
		return zero, false
	}
	val := b.data[b.head]
	// Zero the vacated slot so the buffer releases its reference to the
	// element; ownership has moved to the caller.
	b.data[b.head] = zero
	b.head = ringmath.Advance(b.head, len(b.data))
	b.length--
	return val, true
}

// PopBack removes and returns the logical back element. It returns
// (zero, false) when the buffer is empty.
func (b *RingBuf[T]) PopBack() (T, bool) {
	var zero T
	if b.length == 0 {
		return zero, false
	}
	idx := ringmath.Physical(b.head, len(b.data), b.length-1)
	val := b.data[idx]
	b.data[idx] = zero
	b.length--
	return val, true
}

// Front returns a copy of the logical front element without removing it.
// It returns (zero, false) when the buffer is empty.
func (b *RingBuf[T]) Front() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}
	return b.data[b.head], true
}

// Back returns a copy of the logical back element without removing it.
// It returns (zero, false) when the buffer is empty.
func (b *RingBuf[T]) Back() (T, bool) {
	if b.length == 0 {
		var zero T
		return zero, false
	}
	return b.data[ringmath.Physical(b.head, len(b.data), b.length-1)], true
}

// FrontMut returns a pointer to the logical front element for in-place
// mutation, or (nil, false) when the buffer is empty.
//
// The pointer is an exclusive view: it must not be used concurrently with
// any other access into the buffer, and it is invalidated by the next
// mutating operation.
func (b *RingBuf[T]) FrontMut() (*T, bool) {
	if b.length == 0 {
		return nil, false
	}
	return &b.data[b.head], true
}

// BackMut returns a pointer to the logical back element for in-place
// mutation, or (nil, false) when the buffer is empty. The same exclusivity
// rules as FrontMut apply.
func (b *RingBuf[T]) BackMut() (*T, bool) {
	if b.length == 0 {
		return nil, false
	}
	return &b.data[ringmath.Physical(b.head, len(b.data), b.length-1)], true
}

// At returns a copy of the element at logical offset i, where offset 0 is
// the front and Len()-1 the back. It returns (zero, false) when i does not
// address a live element.
func (b *RingBuf[T]) At(i int) (T, bool) {
	idx, ok := ringmath.PhysicalChecked(b.head, b.length, len(b.data), i)
	if !ok {
		var zero T
		return zero, false
	}
	return b.data[idx], true
}

// AtMut returns a pointer to the element at logical offset i, or
// (nil, false) when i does not address a live element. The same
// exclusivity rules as FrontMut apply.
func (b *RingBuf[T]) AtMut(i int) (*T, bool) {
	idx, ok := ringmath.PhysicalChecked(b.head, b.length, len(b.data), i)
	if !ok {
		return nil, false
	}
	return &b.data[idx], true
}

// IntoSlice linearizes the buffer: it returns a freshly allocated slice
// holding exactly the live elements in logical front-to-back order and
// consumes the buffer. The backing storage is released and the receiver
// becomes a dead, permanently empty shell that must not be used again.
func (b *RingBuf[T]) IntoSlice() []T {
	out := make([]T, b.length)
	for i := range out {
		out[i] = b.data[ringmath.Physical(b.head, len(b.data), i)]
	}
	b.data = nil
	b.head = 0
	b.length = 0
	return out
}

// Equal reports whether two buffers hold the same elements in the same
// logical order. Capacity and physical wrap position play no part: two
// buffers that arrived at the same logical content through different
// push/pop histories compare equal.
func Equal[T comparable](a, b *RingBuf[T]) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		av := a.data[ringmath.Physical(a.head, len(a.data), i)]
		bv := b.data[ringmath.Physical(b.head, len(b.data), i)]
		if av != bv {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq, allowing the two
// buffers to hold different element types.
func EqualFunc[T1, T2 any](a *RingBuf[T1], b *RingBuf[T2], eq func(T1, T2) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		av := a.data[ringmath.Physical(a.head, len(a.data), i)]
		bv := b.data[ringmath.Physical(b.head, len(b.data), i)]
		if !eq(av, bv) {
			return false
		}
	}
	return true
}
