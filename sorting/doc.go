// Package sorting collects the sorting algorithms of chapters 2, 6, 7, 8 and 27
// of "Introduction to Algorithms", written the straightforward textbook way.
//
// What:
//
//   - Bubble sort, two directions:
//     BubbleLR: large values bubble to the right end.
//     BubbleRL: small values bubble to the left end.
//   - Insertion sort: Insertion (shift, then place the key once) and
//     InsertionSwap (walk the key left by adjacent swaps).
//   - Merge sort: Merge (merge through one buffer) and MergeCLRS (copy both
//     halves first, then merge back, as in the book's MERGE procedure).
//   - Quicksort with two partitioning schemes:
//     Lomuto: the last element is the pivot and lands in its final position.
//     Hoare: the first element is the pivot; the returned index only splits
//     the slice into a "small" and a "large" half.
//     WithRandomPivot turns either into RANDOMIZED-QUICKSORT.
//   - Heapsort via the binheap package.
//   - Linear-time sorts that never compare two elements:
//     Counting (integers in a bounded range, stable),
//     CountingBy (stable sort of any values by a small integer key),
//     Radix (LSD, one stable CountingBy pass per digit),
//     Bucket (float64 values in [0, 1)).
//   - ParallelMerge: the multithreaded merge sort of chapter 27, with "spawn"
//     mapped onto an errgroup goroutine and "sync" onto a channel receive.
//
// Why:
//
//   - Every algorithm here is a learning exercise: the code follows the
//     pseudocode closely and favours clarity over speed. For production use
//     reach for slices.Sort.
//
// Complexity:
//
//   - Bubble, Insertion:      O(n²) worst case, O(1) extra memory
//   - Merge, MergeCLRS:       O(n log n), O(n) extra memory, stable
//   - Quick:                  O(n log n) expected, O(n²) worst case
//   - Heap:                   O(n log n), in place
//   - Counting:               O(n + k), k = max - min + 1
//   - Radix:                  O(d·(n + b)), d digits in base b
//   - Bucket:                 O(n) expected for uniform input
//   - ParallelMerge:          O(n log n) work, O(n) span with a serial merge
//
// Errors:
//
//   - ErrOptionViolation   an Option received an invalid value
//   - ErrBadBase           radix base below 2
//   - ErrRangeTooLarge     counting sort range exceeds the configured limit
//   - ErrKeyOutOfRange     CountingBy key outside [0, k)
//   - ErrOutOfRange        bucket sort value outside [0, 1)
//   - ErrUnknownAlgorithm  IntSorter was given an unknown name
//   - context errors       ParallelMerge was canceled
package sorting
