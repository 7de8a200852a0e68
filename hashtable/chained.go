package hashtable

// chainNode is one link of a collision chain.
type chainNode[K comparable, V any] struct {
	key  K
	val  V
	next *chainNode[K, V]
}

// Chained is a hash table that resolves collisions by chaining.
type Chained[K comparable, V any] struct {
	slots   []*chainNode[K, V]
	size    int
	hash    Hasher[K]
	maxLoad float64
}

// NewChained returns an empty chained table.
// Options honoured: WithCapacity, WithMaxLoad (default DefaultChainedLoad).
func NewChained[K comparable, V any](hash Hasher[K], opts ...Option) (*Chained[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	o, err := buildOptions(opts, DefaultChainedLoad)
	if err != nil {
		return nil, err
	}

	return &Chained[K, V]{
		slots:   make([]*chainNode[K, V], o.Capacity),
		hash:    hash,
		maxLoad: o.MaxLoad,
	}, nil
}

// Len returns the number of stored keys.
func (t *Chained[K, V]) Len() int { return t.size }

// Cap returns the number of slots.
func (t *Chained[K, V]) Cap() int { return len(t.slots) }

// LoadFactor returns α = n/m.
func (t *Chained[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

func (t *Chained[K, V]) index(k K) int {
	return Division(t.hash(k), len(t.slots))
}

// Put inserts k or replaces its value.
func (t *Chained[K, V]) Put(k K, v V) {
	i := t.index(k)
	for n := t.slots[i]; n != nil; n = n.next {
		if n.key == k {
			n.val = v
			return
		}
	}

	if float64(t.size+1) > t.maxLoad*float64(len(t.slots)) {
		t.resize(2 * len(t.slots))
		i = t.index(k)
	}
	// CHAINED-HASH-INSERT: push onto the head of the chain.
	t.slots[i] = &chainNode[K, V]{key: k, val: v, next: t.slots[i]}
	t.size++
}

// Get returns the value stored under k, or ErrKeyNotFound.
func (t *Chained[K, V]) Get(k K) (V, error) {
	for n := t.slots[t.index(k)]; n != nil; n = n.next {
		if n.key == k {
			return n.val, nil
		}
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Contains reports whether k is stored.
func (t *Chained[K, V]) Contains(k K) bool {
	_, err := t.Get(k)
	return err == nil
}

// Delete removes k, or returns ErrKeyNotFound.
func (t *Chained[K, V]) Delete(k K) error {
	i := t.index(k)
	var prev *chainNode[K, V]
	for n := t.slots[i]; n != nil; prev, n = n, n.next {
		if n.key != k {
			continue
		}
		if prev == nil {
			t.slots[i] = n.next
		} else {
			prev.next = n.next
		}
		t.size--
		return nil
	}

	return ErrKeyNotFound
}

// Keys returns the stored keys in slot order, which is unspecified.
func (t *Chained[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for _, head := range t.slots {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}

	return keys
}

// ChainLengths returns the length of every chain, slot by slot.
func (t *Chained[K, V]) ChainLengths() []int {
	out := make([]int, len(t.slots))
	for i, head := range t.slots {
		for n := head; n != nil; n = n.next {
			out[i]++
		}
	}

	return out
}

// resize rehashes every node into m slots, reusing the nodes.
func (t *Chained[K, V]) resize(m int) {
	old := t.slots
	t.slots = make([]*chainNode[K, V], m)
	for _, head := range old {
		for n := head; n != nil; {
			next := n.next
			i := t.index(n.key)
			n.next = t.slots[i]
			t.slots[i] = n
			n = next
		}
	}
}
