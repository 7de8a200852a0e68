package binheap

import "errors"

// Sentinel errors for heap and priority-queue operations.
var (
	// ErrEmpty is returned when Pop or Peek is called on an empty container.
	ErrEmpty = errors.New("binheap: heap is empty")

	// ErrIndexOutOfRange is returned by Fix when the index does not address an element.
	ErrIndexOutOfRange = errors.New("binheap: index out of range")

	// ErrDuplicateKey is returned when a key is pushed twice into a PriorityQueue.
	ErrDuplicateKey = errors.New("binheap: key already queued")

	// ErrKeyNotFound is returned when updating a key that is not in the PriorityQueue.
	ErrKeyNotFound = errors.New("binheap: key not queued")
)

// parent, left and right map heap positions on a 0-based array.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
