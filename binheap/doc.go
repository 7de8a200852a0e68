// Package binheap implements the binary heap of chapter 6 together with the
// two things it is usually built for: heapsort and a min-priority queue.
//
// What:
//
//   - Heap[T]: an array-backed binary heap ordered by a caller-supplied less
//     function. The element at index 0 is the one that is "least" by less,
//     so NewMin gives a min-heap and NewMax gives a max-heap.
//   - Sort: in-place HEAPSORT. A max-heap is built over the slice, the root is
//     swapped to the end, the heap size shrinks by one, and the root is sifted
//     down again until the heap is empty.
//   - PriorityQueue[K, P]: a keyed min-priority queue with DECREASE-KEY (and
//     increase-key) support, used by Dijkstra and Prim in this module.
//
// Layout:
//
//	For the node at index i (0-based):
//	  parent(i) = (i-1)/2
//	  left(i)   = 2i+1
//	  right(i)  = 2i+2
//
// Complexity:
//
//   - New / BUILD-HEAP:       O(n)
//   - Push, Pop, Fix, Update: O(log n)
//   - Peek, Len, Contains:    O(1)
//   - Sort:                   O(n log n), in place, not stable
//
// Errors:
//
//   - ErrEmpty            Pop or Peek on an empty heap or queue
//   - ErrIndexOutOfRange  Fix with an index outside [0, Len)
//   - ErrDuplicateKey     PriorityQueue.Push with a key already queued
//   - ErrKeyNotFound      PriorityQueue.Update with a key that is not queued
package binheap
