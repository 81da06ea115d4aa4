package main

import (
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoRingBuf/pkg/ringbuf"
	"github.com/i5heu/GoRingBuf/pkg/sliceq"
)

// =============================================================================
// Test Configuration Helpers
// =============================================================================

// getEnvInt reads an integer from an environment variable with a default value.
func getEnvInt(name string, defaultVal int) int {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return defaultVal
}

// Test size configuration via environment variables:
//
//	DEQUE_TEST_OPS   - operations per equivalence run (default: 20000)
//	DEQUE_TEST_SEED  - RNG seed for the equivalence run (default: 1)
func equivalenceOps() int {
	return getEnvInt("DEQUE_TEST_OPS", 20000)
}

func equivalenceSeed() int64 {
	return int64(getEnvInt("DEQUE_TEST_SEED", 1))
}

// =============================================================================
// Model-Based Equivalence
// =============================================================================

// TestImplementationEquivalence drives the ring buffer and the slice-backed
// reference deque with an identical random operation stream and checks that
// every observable (lengths, emptiness, both peeks, every pop result, every
// push error) agrees at each step. The slice deque is trivially correct, so
// any divergence points at the ring index arithmetic.
func TestImplementationEquivalence(t *testing.T) {
	capacities := []int{0, 1, 2, 3, 7, 16, 64}
	ops := equivalenceOps()

	for _, capacity := range capacities {
		capacity := capacity
		t.Run(strconv.Itoa(capacity), func(t *testing.T) {
			rng := rand.New(rand.NewSource(equivalenceSeed()))
			ring := ringbuf.New[int](capacity)
			oracle := sliceq.New[int](capacity)

			for i := 0; i < ops; i++ {
				val := rng.Intn(1 << 20)
				switch rng.Intn(6) {
				case 0:
					ringErr := ring.PushBack(val)
					oracleErr := oracle.PushBack(val)
					require.Equal(t, oracleErr == nil, ringErr == nil, "op %d PushBack", i)
				case 1:
					ringErr := ring.PushFront(val)
					oracleErr := oracle.PushFront(val)
					require.Equal(t, oracleErr == nil, ringErr == nil, "op %d PushFront", i)
				case 2:
					rv, rok := ring.PopFront()
					ov, ook := oracle.PopFront()
					require.Equal(t, ook, rok, "op %d PopFront", i)
					require.Equal(t, ov, rv, "op %d PopFront value", i)
				case 3:
					rv, rok := ring.PopBack()
					ov, ook := oracle.PopBack()
					require.Equal(t, ook, rok, "op %d PopBack", i)
					require.Equal(t, ov, rv, "op %d PopBack value", i)
				case 4:
					rv, rok := ring.Front()
					ov, ook := oracle.Front()
					require.Equal(t, ook, rok, "op %d Front", i)
					require.Equal(t, ov, rv, "op %d Front value", i)
				default:
					rv, rok := ring.Back()
					ov, ook := oracle.Back()
					require.Equal(t, ook, rok, "op %d Back", i)
					require.Equal(t, ov, rv, "op %d Back value", i)
				}

				require.Equal(t, oracle.Len(), ring.Len(), "op %d Len", i)
				require.Equal(t, oracle.IsEmpty(), ring.IsEmpty(), "op %d IsEmpty", i)
				require.Equal(t, oracle.IsFull(), ring.IsFull(), "op %d IsFull", i)
			}

			// Final state: draining both must produce the same sequence.
			for {
				rv, rok := ring.PopFront()
				ov, ook := oracle.PopFront()
				require.Equal(t, ook, rok)
				if !rok {
					break
				}
				require.Equal(t, ov, rv)
			}
		})
	}
}

// TestWraparoundIntegrity cycles many elements through a small buffer so
// the head wraps the physical end thousands of times, verifying that the
// FIFO sequence never skips or duplicates a value.
func TestWraparoundIntegrity(t *testing.T) {
	const capacity = 7
	total := getEnvInt("WRAP_TEST_SIZE", 100000)

	q := ringbuf.New[int](capacity)
	nextPush := 0
	nextPop := 0

	for nextPop < total {
		if nextPush < total && q.PushBack(nextPush) == nil {
			nextPush++
			continue
		}
		got, ok := q.PopFront()
		require.True(t, ok)
		require.Equal(t, nextPop, got, "sequence broken at element %d", nextPop)
		nextPop++
	}
	require.True(t, q.IsEmpty())
}

// TestIteratorAgreesWithOracle walks a wrapped buffer forward and backward
// and compares against the reference deque's linear content.
func TestIteratorAgreesWithOracle(t *testing.T) {
	const capacity = 8
	ring := ringbuf.New[int](capacity)
	oracle := sliceq.New[int](capacity)

	rng := rand.New(rand.NewSource(equivalenceSeed()))
	for i := 0; i < 1000; i++ {
		val := rng.Intn(1 << 16)
		switch rng.Intn(4) {
		case 0:
			ring.PushBack(val)
			oracle.PushBack(val)
		case 1:
			ring.PushFront(val)
			oracle.PushFront(val)
		case 2:
			ring.PopFront()
			oracle.PopFront()
		default:
			ring.PopBack()
			oracle.PopBack()
		}
	}

	want := oracle.Elems()

	it := ring.Iter()
	var forward []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		forward = append(forward, v)
	}
	require.Equal(t, len(want), len(forward))
	for i := range want {
		require.Equal(t, want[i], forward[i])
	}

	it = ring.Iter()
	var backward []int
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		backward = append(backward, v)
	}
	for i := range want {
		require.Equal(t, want[len(want)-1-i], backward[i])
	}
}
