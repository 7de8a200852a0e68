package disjointset_test

import (
	"testing"

	"github.com/katalvlaran/clrs/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForest_UnionFind(t *testing.T) {
	f := disjointset.New("a", "b", "c", "d", "e")
	assert.Equal(t, 5, f.Count())
	assert.Equal(t, 5, f.Len())

	merged, err := f.Union("a", "b")
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = f.Union("c", "d")
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = f.Union("b", "a")
	require.NoError(t, err)
	assert.False(t, merged, "already joined")

	_, err = f.Union("a", "d")
	require.NoError(t, err)
	assert.Equal(t, 2, f.Count())

	ok, err := f.Connected("b", "c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Connected("a", "e")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForest_MakeSetIdempotent(t *testing.T) {
	f := disjointset.New[int]()
	f.MakeSet(1)
	f.MakeSet(1)
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, 1, f.Len())
}

func TestForest_NotFound(t *testing.T) {
	f := disjointset.New(1, 2)
	_, err := f.Find(3)
	assert.ErrorIs(t, err, disjointset.ErrNotFound)
	_, err = f.Union(1, 3)
	assert.ErrorIs(t, err, disjointset.ErrNotFound)
	_, err = f.Connected(3, 1)
	assert.ErrorIs(t, err, disjointset.ErrNotFound)
}

// TestForest_LongChain unions a long chain and checks every element reports the same root.
func TestForest_LongChain(t *testing.T) {
	const n = 1000
	f := disjointset.New[int]()
	for i := 0; i < n; i++ {
		f.MakeSet(i)
	}
	for i := 1; i < n; i++ {
		_, err := f.Union(i-1, i)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, f.Count())

	root, err := f.Find(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		r, err := f.Find(i)
		require.NoError(t, err)
		assert.Equal(t, root, r)
	}
}
