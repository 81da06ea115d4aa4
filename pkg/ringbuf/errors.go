package ringbuf

import "errors"

// ErrCapacityExceeded is returned by PushBack and PushFront when the
// buffer already holds Cap() elements. The push has no effect and the
// rejected value stays with the caller. The condition is recoverable: pop
// an element to make room, or drop the value.
//
// Empty-buffer conditions are not errors; PopFront, PopBack and the peek
// accessors signal absence through their comma-ok result instead.
var ErrCapacityExceeded = errors.New("ringbuf: capacity exceeded")
