package bst

import (
	"cmp"
	"errors"
	"iter"
)

// Sentinel errors for the bst package.
var (
	// ErrKeyNotFound is returned when the requested key is not in the tree.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrNoSuccessor is returned by Successor for the largest key.
	ErrNoSuccessor = errors.New("bst: key has no successor")

	// ErrNoPredecessor is returned by Predecessor for the smallest key.
	ErrNoPredecessor = errors.New("bst: key has no predecessor")
)

type node[K cmp.Ordered, V any] struct {
	key                 K
	val                 V
	left, right, parent *node[K, V]
}

// Tree is a binary search tree. The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] { return &Tree[K, V]{} }

// Len returns the number of keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Put inserts k with value v, replacing the value if k is present (TREE-INSERT).
func (t *Tree[K, V]) Put(k K, v V) {
	var parent *node[K, V]
	x := t.root
	for x != nil {
		parent = x
		switch c := cmp.Compare(k, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			x.val = v
			return
		}
	}

	z := &node[K, V]{key: k, val: v, parent: parent}
	switch {
	case parent == nil:
		t.root = z
	case cmp.Less(k, parent.key):
		parent.left = z
	default:
		parent.right = z
	}
	t.size++
}

// search walks down from the root (ITERATIVE-TREE-SEARCH).
func (t *Tree[K, V]) search(k K) *node[K, V] {
	x := t.root
	for x != nil {
		switch c := cmp.Compare(k, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}

	return nil
}

// Get returns the value stored under k.
func (t *Tree[K, V]) Get(k K) (V, error) {
	if x := t.search(k); x != nil {
		return x.val, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Contains reports whether k is in the tree.
func (t *Tree[K, V]) Contains(k K) bool { return t.search(k) != nil }

func minimum[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func maximum[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	x := minimum(t.root)

	return x.key, x.val, nil
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	x := maximum(t.root)

	return x.key, x.val, nil
}

// successor returns the in-order successor of x, or nil.
func successor[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	if x.right != nil {
		return minimum(x.right)
	}
	y := x.parent
	for y != nil && x == y.right {
		x, y = y, y.parent
	}

	return y
}

func predecessor[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	if x.left != nil {
		return maximum(x.left)
	}
	y := x.parent
	for y != nil && x == y.left {
		x, y = y, y.parent
	}

	return y
}

// Successor returns the smallest key greater than k. k must be present.
func (t *Tree[K, V]) Successor(k K) (K, error) {
	var zero K
	x := t.search(k)
	if x == nil {
		return zero, ErrKeyNotFound
	}
	s := successor(x)
	if s == nil {
		return zero, ErrNoSuccessor
	}

	return s.key, nil
}

// Predecessor returns the largest key smaller than k. k must be present.
func (t *Tree[K, V]) Predecessor(k K) (K, error) {
	var zero K
	x := t.search(k)
	if x == nil {
		return zero, ErrKeyNotFound
	}
	p := predecessor(x)
	if p == nil {
		return zero, ErrNoPredecessor
	}

	return p.key, nil
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Delete removes k (TREE-DELETE).
func (t *Tree[K, V]) Delete(k K) error {
	z := t.search(k)
	if z == nil {
		return ErrKeyNotFound
	}

	switch {
	case z.left == nil:
		t.transplant(z, z.right)
	case z.right == nil:
		t.transplant(z, z.left)
	default:
		// z has two children: its successor y has no left child.
		y := minimum(z.right)
		if y.parent != z {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	t.size--

	return nil
}

// All yields key/value pairs in ascending key order (INORDER-TREE-WALK).
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		for x := minimum(t.root); x != nil; x = successor(x) {
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

// Height returns the number of edges on the longest root-to-leaf path;
// -1 for an empty tree.
func (t *Tree[K, V]) Height() int { return height(t.root) }

func height[K cmp.Ordered, V any](x *node[K, V]) int {
	if x == nil {
		return -1
	}

	return 1 + max(height(x.left), height(x.right))
}
