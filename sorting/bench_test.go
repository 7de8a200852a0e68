package sorting_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/clrs/sorting"
)

// BenchmarkAlgorithms sorts the same 4096 random ints with every registered algorithm.
func BenchmarkAlgorithms(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	in := make([]int, 4096)
	for i := range in {
		in[i] = r.Intn(100_000)
	}

	for _, name := range sorting.Algorithms() {
		fn, _ := sorting.IntSorter(name)
		b.Run(string(name), func(b *testing.B) {
			buf := make([]int, len(in))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, in)
				_ = fn(context.Background(), buf)
			}
		})
	}
}

// BenchmarkQuick_SortedInput shows the effect of random pivots on the worst case.
func BenchmarkQuick_SortedInput(b *testing.B) {
	in := make([]int, 2048)
	for i := range in {
		in[i] = i
	}
	for _, tc := range []struct {
		name string
		opts []sorting.Option
	}{
		{"fixed", nil},
		{"random", []sorting.Option{sorting.WithRandomPivot(1)}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				buf := slices.Clone(in)
				_ = sorting.Quick(buf, tc.opts...)
			}
		})
	}
}
