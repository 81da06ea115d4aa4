package testbench

import (
	"context"
	"time"

	"github.com/i5heu/GoRingBuf/internal/deque"
)

// Config describes one bench scenario: which access pattern to drive and
// the capacity the deque under test was created with.
type Config struct {
	Workload string
	Capacity int
}

// Workload names understood by RunTimedTest.
const (
	WorkloadFIFO  = "fifo"  // PushBack, PopFront when full — queue traffic
	WorkloadLIFO  = "lifo"  // PushBack, PopBack when full — stack traffic
	WorkloadMixed = "mixed" // alternating ends on both push and pop
	WorkloadWrap  = "wrap"  // fill, drain half, refill — maximizes wraparound
)

// Workloads lists every pattern in the order benches run them.
var Workloads = []string{WorkloadFIFO, WorkloadLIFO, WorkloadMixed, WorkloadWrap}

// ctxCheckInterval is how many operations run between context deadline
// checks, keeping the hot loop free of timer reads.
const ctxCheckInterval = 4096

// RunTimedTest drives a single deque with the configured workload for the
// specified duration, measuring how many elements are actually pushed and
// popped in that window. The deque is single-owner by contract, so the
// whole run happens on the calling goroutine. Once the deadline expires
// the deque is drained of any remaining elements.
// Returns the total elements pushed, total popped, and the actual elapsed time.
func RunTimedTest[T any, Q deque.DequeValidationInterface[T]](
	q Q,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) (pushedCount int64, poppedCount int64, elapsed time.Duration) {

	// Create a context that will cancel after testDuration.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	var totalPushed int64
	var totalPopped int64

	start := time.Now()

	step := 0
	draining := false // wrap workload phase flag
	for {
		for i := 0; i < ctxCheckInterval; i++ {
			switch cfg.Workload {
			case WorkloadLIFO:
				if q.IsFull() {
					if _, ok := q.PopBack(); ok {
						totalPopped++
					}
				} else if q.PushBack(valueGenerator(step)) == nil {
					totalPushed++
				}

			case WorkloadMixed:
				if q.IsFull() {
					// Pop from the end opposite to the upcoming push so
					// elements keep crossing the buffer.
					if step%2 == 0 {
						if _, ok := q.PopFront(); ok {
							totalPopped++
						}
					} else if _, ok := q.PopBack(); ok {
						totalPopped++
					}
				} else {
					var err error
					if step%2 == 0 {
						err = q.PushBack(valueGenerator(step))
					} else {
						err = q.PushFront(valueGenerator(step))
					}
					if err == nil {
						totalPushed++
					}
				}

			case WorkloadWrap:
				if draining {
					if q.Len() <= q.Cap()/2 {
						draining = false
					} else if _, ok := q.PopFront(); ok {
						totalPopped++
					}
				} else {
					if q.IsFull() {
						draining = true
					} else if q.PushBack(valueGenerator(step)) == nil {
						totalPushed++
					}
				}

			default: // WorkloadFIFO
				if q.IsFull() {
					if _, ok := q.PopFront(); ok {
						totalPopped++
					}
				} else if q.PushBack(valueGenerator(step)) == nil {
					totalPushed++
				}
			}
			step++
		}

		if ctx.Err() != nil {
			break
		}
	}

	// Drain whatever the workload left behind so pushed and popped counts
	// line up for integrity checks.
	for {
		if _, ok := q.PopFront(); !ok {
			break
		}
		totalPopped++
	}

	elapsed = time.Since(start)
	pushedCount = totalPushed
	poppedCount = totalPopped
	return pushedCount, poppedCount, elapsed
}
