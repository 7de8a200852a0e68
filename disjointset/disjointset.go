// Package disjointset implements the disjoint-set forest of chapter 21.
//
// Each set is a rooted tree; Find walks to the root and compresses the path
// behind it, and Union links the root of smaller rank under the root of larger
// rank. With both heuristics a sequence of m operations on n elements runs in
// O(m·α(n)) time, where α is the inverse Ackermann function.
//
// Forest is not safe for concurrent use.
package disjointset

import "errors"

// ErrNotFound is returned when an element was never added with MakeSet.
var ErrNotFound = errors.New("disjointset: element not found")

// Forest is a collection of disjoint sets over comparable elements.
type Forest[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
}

// New returns a forest holding one singleton set per given element.
func New[T comparable](elems ...T) *Forest[T] {
	f := &Forest[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		f.MakeSet(e)
	}

	return f
}

// MakeSet adds x as a singleton set. Adding an existing element is a no-op.
func (f *Forest[T]) MakeSet(x T) {
	if _, ok := f.parent[x]; ok {
		return
	}
	f.parent[x] = x
	f.rank[x] = 0
	f.sets++
}

// Find returns the representative of the set containing x.
func (f *Forest[T]) Find(x T) (T, error) {
	if _, ok := f.parent[x]; !ok {
		var zero T
		return zero, ErrNotFound
	}

	// first pass: locate the root
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// second pass: point every node on the path straight at the root
	for x != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y. It reports false when both were
// already in the same set.
func (f *Forest[T]) Union(x, y T) (bool, error) {
	rx, err := f.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	// union by rank
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.sets--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
func (f *Forest[T]) Connected(x, y T) (bool, error) {
	rx, err := f.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Count returns the number of disjoint sets.
func (f *Forest[T]) Count() int { return f.sets }

// Len returns the number of elements across all sets.
func (f *Forest[T]) Len() int { return len(f.parent) }
