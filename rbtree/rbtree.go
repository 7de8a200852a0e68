package rbtree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for the rbtree package.
var (
	// ErrKeyNotFound is returned when the requested key is not in the tree.
	ErrKeyNotFound = errors.New("rbtree: key not found")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("rbtree: tree is empty")

	// ErrInvariant is returned by Validate when a red-black property is broken.
	ErrInvariant = errors.New("rbtree: invariant violated")
)

type color bool

const (
	red   color = false
	black color = true
)

type node[K cmp.Ordered, V any] struct {
	key                 K
	val                 V
	color               color
	left, right, parent *node[K, V]
}

// Tree is a red-black tree. The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root     *node[K, V]
	sentinel *node[K, V]
	size     int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	t := &Tree[K, V]{}
	t.init()
	return t
}

// init allocates the sentinel on first use.
func (t *Tree[K, V]) init() {
	if t.sentinel != nil {
		return
	}
	t.sentinel = &node[K, V]{color: black}
	t.sentinel.left, t.sentinel.right, t.sentinel.parent = t.sentinel, t.sentinel, t.sentinel
	t.root = t.sentinel
}

// Len returns the number of keys.
func (t *Tree[K, V]) Len() int { return t.size }

func (t *Tree[K, V]) search(k K) *node[K, V] {
	t.init()
	x := t.root
	for x != t.sentinel {
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

func (t *Tree[K, V]) leftRotate(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rightRotate(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// Put inserts k with value v, replacing the value if k is present.
func (t *Tree[K, V]) Put(k K, v V) {
	t.init()
	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
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

	z := &node[K, V]{key: k, val: v, color: red, left: t.sentinel, right: t.sentinel, parent: y}
	switch {
	case y == t.sentinel:
		t.root = z
	case cmp.Less(k, y.key):
		y.left = z
	default:
		y.right = z
	}
	t.size++
	t.insertFixup(z)
}

// insertFixup restores property 4 after z was inserted red.
func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == red {
				// case 1: recolor and move up
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
				continue
			}
			if z == z.parent.right {
				// case 2: rotate into case 3
				z = z.parent
				t.leftRotate(z)
			}
			// case 3
			z.parent.color = black
			z.parent.parent.color = red
			t.rightRotate(z.parent.parent)
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rightRotate(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.leftRotate(z.parent.parent)
		}
	}
	t.root.color = black
}

// transplant replaces the subtree at u with the one at v. v may be the
// sentinel, whose parent is set so deleteFixup can climb from it.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[K, V]) minimum(x *node[K, V]) *node[K, V] {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Tree[K, V]) maximum(x *node[K, V]) *node[K, V] {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}

// Delete removes k (RB-DELETE).
func (t *Tree[K, V]) Delete(k K) error {
	z := t.search(k)
	if z == nil {
		return ErrKeyNotFound
	}

	var x *node[K, V]
	y := z
	yOrig := y.color
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yOrig = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.size--

	if yOrig == black {
		t.deleteFixup(x)
	}
	// The sentinel's links are scratch space during fixup.
	t.sentinel.parent = t.sentinel

	return nil
}

// deleteFixup removes the extra black carried by x.
func (t *Tree[K, V]) deleteFixup(x *node[K, V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right // sibling
			if w.color == red {
				// case 1: make the sibling black
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				// case 2: push the extra black up
				w.color = red
				x = x.parent
				continue
			}
			if w.right.color == black {
				// case 3: turn into case 4
				w.left.color = black
				w.color = red
				t.rightRotate(w)
				w = x.parent.right
			}
			// case 4
			w.color = x.parent.color
			x.parent.color = black
			w.right.color = black
			t.leftRotate(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
				continue
			}
			if w.left.color == black {
				w.right.color = black
				w.color = red
				t.leftRotate(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = black
			w.left.color = black
			t.rightRotate(x.parent)
			x = t.root
		}
	}
	x.color = black
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, error) {
	t.init()
	if t.root == t.sentinel {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	x := t.minimum(t.root)

	return x.key, x.val, nil
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, error) {
	t.init()
	if t.root == t.sentinel {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	x := t.maximum(t.root)

	return x.key, x.val, nil
}

// All yields key/value pairs in ascending key order.
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.init()
		t.walk(t.root, yield)
	}
}

func (t *Tree[K, V]) walk(x *node[K, V], yield func(K, V) bool) bool {
	if x == t.sentinel {
		return true
	}

	return t.walk(x.left, yield) && yield(x.key, x.val) && t.walk(x.right, yield)
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
func (t *Tree[K, V]) Height() int {
	t.init()
	return t.height(t.root)
}

func (t *Tree[K, V]) height(x *node[K, V]) int {
	if x == t.sentinel {
		return -1
	}

	return 1 + max(t.height(x.left), t.height(x.right))
}

// BlackHeight returns the number of black nodes on any path from the root
// down to a leaf, not counting the root itself but counting the sentinel.
// An empty tree has black-height 0.
func (t *Tree[K, V]) BlackHeight() int {
	t.init()
	bh := 0
	for x := t.root; x != t.sentinel; x = x.left {
		if x.left.color == black {
			bh++
		}
	}

	return bh
}

// Validate checks the red-black properties, the parent links and the key
// ordering. Violations are reported wrapped in ErrInvariant.
func (t *Tree[K, V]) Validate() error {
	t.init()
	if t.sentinel.color != black {
		return fmt.Errorf("%w: sentinel is red", ErrInvariant)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	if t.root != t.sentinel && t.root.parent != t.sentinel {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}

	count := 0
	if _, err := t.check(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d nodes reachable", ErrInvariant, t.size, count)
	}

	return nil
}

// check validates the subtree at x whose keys must lie strictly between lo
// and hi (nil bounds are open), returning its black-height.
func (t *Tree[K, V]) check(x *node[K, V], lo, hi *K, count *int) (int, error) {
	if x == t.sentinel {
		return 1, nil
	}
	*count++

	if lo != nil && !cmp.Less(*lo, x.key) {
		return 0, fmt.Errorf("%w: key %v not above %v", ErrInvariant, x.key, *lo)
	}
	if hi != nil && !cmp.Less(x.key, *hi) {
		return 0, fmt.Errorf("%w: key %v not below %v", ErrInvariant, x.key, *hi)
	}
	if x.color == red && (x.left.color == red || x.right.color == red) {
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariant, x.key)
	}
	for _, c := range []*node[K, V]{x.left, x.right} {
		if c != t.sentinel && c.parent != x {
			return 0, fmt.Errorf("%w: broken parent link under %v", ErrInvariant, x.key)
		}
	}

	lh, err := t.check(x.left, lo, &x.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(x.right, &x.key, hi, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height %d vs %d under %v", ErrInvariant, lh, rh, x.key)
	}
	if x.color == black {
		lh++
	}

	return lh, nil
}
