package binheap

// Sort orders src ascending by less using HEAPSORT.
//
// Steps:
//  1. Build a max-heap (by less) over the whole slice.
//  2. For heapSize = n down to 2: swap the root (largest) into position
//     heapSize-1, shrink the heap by one and sift the new root down.
//
// The sort is in place and not stable.
// Complexity: O(n log n) time, O(1) extra memory.
func Sort[T any](src []T, less func(a, b T) bool) {
	n := len(src)
	if n < 2 {
		return
	}

	// the heap is ordered by "greater", so the root holds the maximum
	greater := func(a, b T) bool { return less(b, a) }
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(src, i, n, greater)
	}

	for heapSize := n; heapSize > 1; heapSize-- {
		src[0], src[heapSize-1] = src[heapSize-1], src[0]
		siftDown(src, 0, heapSize-1, greater)
	}
}
