package binheap

import "cmp"

// Heap is a binary heap ordered by less. The zero value is not usable;
// construct one with New, NewMin or NewMax.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New builds a heap from items in O(n) (BUILD-HEAP). The input slice is copied,
// so the caller keeps ownership of items.
func New[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	h := &Heap[T]{
		items: make([]T, len(items)),
		less:  less,
	}
	copy(h.items, items)

	// leaves are already heaps; heapify every internal node bottom-up
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		siftDown(h.items, i, len(h.items), h.less)
	}

	return h
}

// NewMin returns a min-heap over ordered values.
func NewMin[T cmp.Ordered](items ...T) *Heap[T] {
	return New(cmp.Less[T], items...)
}

// NewMax returns a max-heap over ordered values.
func NewMax[T cmp.Ordered](items ...T) *Heap[T] {
	return New(func(a, b T) bool { return a > b }, items...)
}

// Len reports the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push inserts v, restoring the heap property by sifting it up.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	siftUp(h.items, len(h.items)-1, h.less)
}

// Pop removes and returns the root element.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // drop the reference for the GC
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		siftDown(h.items, 0, len(h.items), h.less)
	}

	return root, nil
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.items[0], nil
}

// Fix re-establishes the heap ordering after the element at index i changed
// its value in place (through a pointer type, for example).
func (h *Heap[T]) Fix(i int) error {
	if i < 0 || i >= len(h.items) {
		return ErrIndexOutOfRange
	}
	if !siftDown(h.items, i, len(h.items), h.less) {
		siftUp(h.items, i, h.less)
	}

	return nil
}

// Items returns a copy of the underlying array in heap order.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// siftUp moves items[i] towards the root while it is less than its parent.
func siftUp[T any](items []T, i int, less func(a, b T) bool) {
	for i > 0 {
		p := parent(i)
		if !less(items[i], items[p]) {
			return
		}
		items[i], items[p] = items[p], items[i]
		i = p
	}
}

// siftDown is MAX-HEAPIFY generalised to an arbitrary ordering: it pushes
// items[i] down inside the first n elements until both children are not less
// than it. It reports whether the element moved.
func siftDown[T any](items []T, i, n int, less func(a, b T) bool) bool {
	start := i
	for {
		l, r := left(i), right(i)
		best := i
		if l < n && less(items[l], items[best]) {
			best = l
		}
		if r < n && less(items[r], items[best]) {
			best = r
		}
		if best == i {
			break
		}
		items[i], items[best] = items[best], items[i]
		i = best
	}

	return i != start
}
