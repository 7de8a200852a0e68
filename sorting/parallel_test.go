package sorting_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/clrs/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestParallelMerge(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := rand.New(rand.NewSource(3))
	in := make([]int, 50_000)
	for i := range in {
		in[i] = r.Int()
	}
	want := slices.Clone(in)
	slices.Sort(want)

	for _, tc := range []struct {
		name string
		opts []sorting.Option
	}{
		{"defaults", nil},
		{"tiny threshold", []sorting.Option{sorting.WithThreshold(1)}},
		{"single goroutine", []sorting.Option{sorting.WithMaxGoroutines(1), sorting.WithThreshold(64)}},
		{"many goroutines", []sorting.Option{sorting.WithMaxGoroutines(64), sorting.WithThreshold(256)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Clone(in)
			require.NoError(t, sorting.ParallelMerge(context.Background(), got, tc.opts...))
			assert.Equal(t, want, got)
		})
	}
}

func TestParallelMerge_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []int{3, 2, 1}
	assert.ErrorIs(t, sorting.ParallelMerge(ctx, in), context.Canceled)
}

func TestParallelMerge_Options(t *testing.T) {
	in := []int{2, 1}
	assert.ErrorIs(t, sorting.ParallelMerge(context.Background(), in, sorting.WithThreshold(0)), sorting.ErrOptionViolation)
	assert.ErrorIs(t, sorting.ParallelMerge(context.Background(), in, sorting.WithMaxGoroutines(-1)), sorting.ErrOptionViolation)

	require.NoError(t, sorting.ParallelMerge(context.Background(), []int{}))
}
