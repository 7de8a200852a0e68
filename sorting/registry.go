package sorting

import (
	"context"
	"fmt"
)

// Algorithm names a sorting routine for IntSorter.
type Algorithm string

// Registered algorithm names.
const (
	AlgoBubbleLR      Algorithm = "bubble-lr"
	AlgoBubbleRL      Algorithm = "bubble-rl"
	AlgoInsertion     Algorithm = "insertion"
	AlgoInsertionSwap Algorithm = "insertion-swap"
	AlgoMerge         Algorithm = "merge"
	AlgoMergeCLRS     Algorithm = "merge-clrs"
	AlgoQuickLomuto   Algorithm = "quick-lomuto"
	AlgoQuickHoare    Algorithm = "quick-hoare"
	AlgoQuickRandom   Algorithm = "quick-random"
	AlgoHeap          Algorithm = "heap"
	AlgoCounting      Algorithm = "counting"
	AlgoRadix         Algorithm = "radix"
	AlgoParallelMerge Algorithm = "parallel-merge"
)

// IntSortFunc sorts a slice of ints in place.
type IntSortFunc func(ctx context.Context, src []int) error

// plain adapts an infallible sort to IntSortFunc.
func plain(fn func([]int)) IntSortFunc {
	return func(_ context.Context, src []int) error {
		fn(src)
		return nil
	}
}

var registry = map[Algorithm]IntSortFunc{
	AlgoBubbleLR:      plain(BubbleLR[int]),
	AlgoBubbleRL:      plain(BubbleRL[int]),
	AlgoInsertion:     plain(Insertion[int]),
	AlgoInsertionSwap: plain(InsertionSwap[int]),
	AlgoMerge:         plain(Merge[int]),
	AlgoMergeCLRS:     plain(MergeCLRS[int]),
	AlgoHeap:          plain(Heap[int]),
	AlgoQuickLomuto: func(_ context.Context, src []int) error {
		return Quick(src, WithPartitioner(Lomuto))
	},
	AlgoQuickHoare: func(_ context.Context, src []int) error {
		return Quick(src, WithPartitioner(Hoare))
	},
	AlgoQuickRandom: func(_ context.Context, src []int) error {
		return Quick(src, WithRandomPivot(1))
	},
	AlgoCounting: func(_ context.Context, src []int) error {
		return Counting(src)
	},
	AlgoRadix: func(_ context.Context, src []int) error {
		return Radix(src)
	},
	AlgoParallelMerge: func(ctx context.Context, src []int) error {
		return ParallelMerge(ctx, src)
	},
}

// Algorithms lists every registered name in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgoBubbleLR, AlgoBubbleRL,
		AlgoInsertion, AlgoInsertionSwap,
		AlgoMerge, AlgoMergeCLRS,
		AlgoQuickLomuto, AlgoQuickHoare, AlgoQuickRandom,
		AlgoHeap,
		AlgoCounting, AlgoRadix,
		AlgoParallelMerge,
	}
}

// IntSorter returns the routine registered under name.
func IntSorter(name Algorithm) (IntSortFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}
