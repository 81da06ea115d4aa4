package sliceq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	q := New[int](4)
	require.NoError(t, q.PushBack(1))
	require.NoError(t, q.PushBack(2))
	require.NoError(t, q.PushBack(3))

	for _, want := range []int{1, 2, 3} {
		got, ok := q.PopFront()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestPushFrontPopBack(t *testing.T) {
	q := New[int](4)
	require.NoError(t, q.PushFront(1))
	require.NoError(t, q.PushFront(2))
	require.NoError(t, q.PushBack(3))

	assert.Equal(t, []int{2, 1, 3}, q.Elems())

	got, ok := q.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestCapacityRejection(t *testing.T) {
	q := New[int](2)
	require.NoError(t, q.PushBack(1))
	require.NoError(t, q.PushBack(2))
	require.True(t, q.IsFull())

	assert.ErrorIs(t, q.PushBack(3), ErrCapacityExceeded)
	assert.ErrorIs(t, q.PushFront(3), ErrCapacityExceeded)
	assert.Equal(t, []int{1, 2}, q.Elems())
}

func TestZeroCapacity(t *testing.T) {
	q := New[int](0)
	assert.True(t, q.IsEmpty())
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.PushBack(1), ErrCapacityExceeded)
	_, ok := q.PopFront()
	assert.False(t, ok)
}

func TestPeeks(t *testing.T) {
	q := New[int](4)
	_, ok := q.Front()
	assert.False(t, ok)
	_, ok = q.Back()
	assert.False(t, ok)

	require.NoError(t, q.PushBack(1))
	require.NoError(t, q.PushBack(2))

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
	back, ok := q.Back()
	require.True(t, ok)
	assert.Equal(t, 2, back)
	assert.Equal(t, 2, q.Len())
}

func TestElemsIsACopy(t *testing.T) {
	q := New[int](2)
	require.NoError(t, q.PushBack(1))
	elems := q.Elems()
	elems[0] = 99
	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
}
