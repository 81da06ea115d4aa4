package ringbuf

import (
	"github.com/i5heu/GoRingBuf/internal/ringmath"
)

// RingIter is a read-only double-ended traversal over a RingBuf.
//
// The iterator keeps its own pair of logical cursors and never touches the
// buffer's head or length. It is bounded by the buffer's length at the
// time Iter was called, and it is fused: once exhausted it keeps reporting
// exhaustion. The traversal yields every live element exactly once across
// any interleaving of Next and NextBack.
//
// An iterator borrows the buffer: it must be discarded once the buffer is
// mutated, and must not coexist with a RingIterMut or any other mutable
// view of the same buffer.
type RingIter[T any] struct {
	buf *RingBuf[T]
	// Logical offset of the next element to yield in forward direction.
	next int
	// One past the logical offset of the next element to yield in
	// backward direction. next <= nextBack always holds; the traversal is
	// exhausted exactly when they meet.
	nextBack int
}

// Iter returns a read-only double-ended iterator over the buffer's live
// elements in logical front-to-back order.
func (b *RingBuf[T]) Iter() *RingIter[T] {
	return &RingIter[T]{
		buf:      b,
		nextBack: b.length,
	}
}

// Next yields a copy of the element at the front cursor and advances the
// cursor. It returns (zero, false) once the traversal is exhausted.
func (it *RingIter[T]) Next() (T, bool) {
	if it.next >= it.nextBack {
		var zero T
		return zero, false
	}
	val := it.buf.data[ringmath.Physical(it.buf.head, len(it.buf.data), it.next)]
	it.next++
	return val, true
}

// NextBack yields a copy of the element at the back cursor and retreats
// the cursor. It returns (zero, false) once the traversal is exhausted.
func (it *RingIter[T]) NextBack() (T, bool) {
	if it.next >= it.nextBack {
		var zero T
		return zero, false
	}
	it.nextBack--
	return it.buf.data[ringmath.Physical(it.buf.head, len(it.buf.data), it.nextBack)], true
}

// Len returns the number of elements the traversal has yet to yield.
func (it *RingIter[T]) Len() int {
	return it.nextBack - it.next
}

// RingIterMut is the mutating counterpart of RingIter: it yields pointers
// into the buffer's storage so elements can be updated in place, including
// across the physical wraparound point.
//
// A RingIterMut is an exclusive view of the whole buffer. While it is
// live, no other access into the buffer — reads, writes, or other
// iterators — may be used. Each yielded pointer is valid until the buffer
// is next mutated through its own methods.
type RingIterMut[T any] struct {
	buf      *RingBuf[T]
	next     int
	nextBack int
}

// IterMut returns a mutating double-ended iterator over the buffer's live
// elements in logical front-to-back order.
func (b *RingBuf[T]) IterMut() *RingIterMut[T] {
	return &RingIterMut[T]{
		buf:      b,
		nextBack: b.length,
	}
}

// Next yields a pointer to the element at the front cursor and advances
// the cursor. It returns (nil, false) once the traversal is exhausted.
func (it *RingIterMut[T]) Next() (*T, bool) {
	if it.next >= it.nextBack {
		return nil, false
	}
	elem := &it.buf.data[ringmath.Physical(it.buf.head, len(it.buf.data), it.next)]
	it.next++
	return elem, true
}

// NextBack yields a pointer to the element at the back cursor and
// retreats the cursor. It returns (nil, false) once the traversal is
// exhausted.
func (it *RingIterMut[T]) NextBack() (*T, bool) {
	if it.next >= it.nextBack {
		return nil, false
	}
	it.nextBack--
	return &it.buf.data[ringmath.Physical(it.buf.head, len(it.buf.data), it.nextBack)], true
}

// Len returns the number of elements the traversal has yet to yield.
func (it *RingIterMut[T]) Len() int {
	return it.nextBack - it.next
}
