package sorting

import (
	"cmp"

	"github.com/katalvlaran/clrs/binheap"
)

// Heap sorts src in place with HEAPSORT. The heap itself lives in src: a
// max-heap is built over the whole slice and its root is repeatedly swapped
// behind a shrinking heap boundary.
//
// Not stable. Complexity: O(n log n) time, O(1) memory.
func Heap[T cmp.Ordered](src []T) {
	binheap.Sort(src, cmp.Less[T])
}
