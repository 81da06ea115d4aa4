// Package ringmath holds the wraparound index arithmetic shared by every
// code path that touches the backing storage of a ring buffer. All slot
// addressing goes through this package so that push, pop and iterator code
// cannot drift apart in how they map logical offsets to physical slots.
//
// A logical offset is 0-based and front-relative: offset 0 is the logical
// front element, offset length-1 the logical back element. A physical index
// addresses the backing slice directly.
package ringmath

// Physical maps a logical offset to a physical slot index without
// validating its inputs.
//
// Preconditions (caller-verified): capacity > 0, head in [0, capacity),
// offset >= 0. Use PhysicalChecked unless the surrounding code has already
// established these, e.g. by bounds-checking against the live length.
func Physical(head, capacity, offset int) int {
	return (head + offset) % capacity
}

// PhysicalChecked maps a logical offset to a physical slot index, first
// validating that the offset addresses a live element. It reports false for
// a zero capacity, so it never divides by zero, and for any offset outside
// [0, length). For all valid inputs it agrees with Physical.
func PhysicalChecked(head, length, capacity, offset int) (int, bool) {
	if capacity <= 0 || offset < 0 || offset >= length {
		return 0, false
	}
	return Physical(head, capacity, offset), true
}

// Advance steps a physical index one slot forward, wrapping at capacity.
// Used when the front element is popped and head moves up.
func Advance(idx, capacity int) int {
	idx++
	if idx == capacity {
		return 0
	}
	return idx
}

// Retreat steps a physical index one slot backward, wrapping below zero.
// Used when an element is pushed at the front and head moves down. The
// wrap is handled explicitly rather than via modulus so the arithmetic
// never produces a negative intermediate.
func Retreat(idx, capacity int) int {
	if idx == 0 {
		return capacity - 1
	}
	return idx - 1
}
