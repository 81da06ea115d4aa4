package deque

// DequeValidationInterface is a *type constraint* that ensures any type Q has
// these methods. We never store Q in a runtime interface—
// we only use DequeValidationInterface at compile time to ensure matching signatures
// across the deque implementations exercised by the bench harness and tests.
type DequeValidationInterface[T any] interface {
	// PushBack appends an element at the logical back.
	// It returns an error when the deque is full; the deque is unchanged.
	PushBack(T) error

	// PushFront inserts an element at the logical front.
	// It returns an error when the deque is full; the deque is unchanged.
	PushFront(T) error

	// PopBack removes and returns the logical back element.
	// If the deque is empty it should return an empty T and false, otherwise true.
	PopBack() (T, bool)

	// PopFront removes and returns the logical front element.
	// If the deque is empty it should return an empty T and false, otherwise true.
	PopFront() (T, bool)

	// Front and Back peek at the respective end without removing.
	Front() (T, bool)
	Back() (T, bool)

	// Len reports how many elements are currently held.
	Len() int

	// Cap reports the fixed capacity.
	Cap() int

	IsEmpty() bool
	IsFull() bool
}
