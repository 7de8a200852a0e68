package binheap_test

import (
	"testing"

	"github.com/katalvlaran/clrs/binheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_Basic(t *testing.T) {
	q := binheap.NewPriorityQueue[string, int64]()
	require.NoError(t, q.Push("a", 5))
	require.NoError(t, q.Push("b", 2))
	require.NoError(t, q.Push("c", 9))
	assert.ErrorIs(t, q.Push("a", 1), binheap.ErrDuplicateKey)

	assert.True(t, q.Contains("b"))
	p, ok := q.Priority("c")
	assert.True(t, ok)
	assert.EqualValues(t, 9, p)

	k, prio, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", k)
	assert.EqualValues(t, 2, prio)

	var order []string
	for q.Len() > 0 {
		k, _, err := q.Pop()
		require.NoError(t, err)
		order = append(order, k)
	}
	assert.Equal(t, []string{"b", "a", "c"}, order)
	assert.False(t, q.Contains("b"))

	_, _, err = q.Pop()
	assert.ErrorIs(t, err, binheap.ErrEmpty)
	_, _, err = q.Peek()
	assert.ErrorIs(t, err, binheap.ErrEmpty)
}

// TestPriorityQueue_Update exercises both decrease-key and increase-key.
func TestPriorityQueue_Update(t *testing.T) {
	q := binheap.NewPriorityQueue[int, float64]()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(i, float64(10+i)))
	}

	require.NoError(t, q.Update(7, 1))  // decrease: 7 becomes the minimum
	require.NoError(t, q.Update(0, 99)) // increase: 0 sinks to the bottom
	assert.ErrorIs(t, q.Update(42, 0), binheap.ErrKeyNotFound)

	k, p, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, k)
	assert.Equal(t, 1.0, p)

	var last int
	for q.Len() > 0 {
		last, _, _ = q.Pop()
	}
	assert.Equal(t, 0, last)
}

func TestPriorityQueue_PriorityMissing(t *testing.T) {
	q := binheap.NewPriorityQueue[string, int]()
	_, ok := q.Priority("nope")
	assert.False(t, ok)
}
