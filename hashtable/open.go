package hashtable

import "fmt"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotUsed
	slotDeleted
)

type openSlot[K comparable, V any] struct {
	key   K
	val   V
	state slotState
}

// Open is a hash table with open addressing.
type Open[K comparable, V any] struct {
	slots   []openSlot[K, V]
	size    int // used slots
	tombs   int // deleted slots
	hash    Hasher[K]
	probing Probing
	maxLoad float64
	grow    bool
}

// NewOpen returns an empty open-addressing table.
// Options honoured: WithCapacity, WithMaxLoad (default DefaultOpenLoad, must
// be below 1), WithProbing, WithoutGrowth.
func NewOpen[K comparable, V any](hash Hasher[K], opts ...Option) (*Open[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	o, err := buildOptions(opts, DefaultOpenLoad)
	if err != nil {
		return nil, err
	}
	if o.MaxLoad >= 1 {
		return nil, fmt.Errorf("%w: open addressing needs max load below 1 (%g)", ErrOptionViolation, o.MaxLoad)
	}

	return &Open[K, V]{
		slots:   make([]openSlot[K, V], o.Capacity),
		hash:    hash,
		probing: o.Probing,
		maxLoad: o.MaxLoad,
		grow:    o.Grow,
	}, nil
}

// Len returns the number of stored keys.
func (t *Open[K, V]) Len() int { return t.size }

// Cap returns the number of slots.
func (t *Open[K, V]) Cap() int { return len(t.slots) }

// LoadFactor returns α = n/m, not counting tombstones.
func (t *Open[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// Probing returns the probe sequence in use.
func (t *Open[K, V]) Probing() Probing { return t.probing }

// probe returns the i-th slot of the probe sequence for hash h.
// Every sequence visits all m slots for i in [0, m) because m is a power of two.
func (t *Open[K, V]) probe(h uint64, i int) int {
	m := uint64(len(t.slots))
	switch t.probing {
	case Quadratic:
		u := uint64(i)
		return int((h + u*(u+1)/2) & (m - 1))
	case Double:
		step := (h >> 32) | 1
		return int((h + uint64(i)*step) & (m - 1))
	default:
		return int((h + uint64(i)) & (m - 1))
	}
}

// find returns the slot holding k, or -1.
func (t *Open[K, V]) find(k K) int {
	h := t.hash(k)
	for i := 0; i < len(t.slots); i++ {
		j := t.probe(h, i)
		switch t.slots[j].state {
		case slotEmpty:
			return -1
		case slotUsed:
			if t.slots[j].key == k {
				return j
			}
		}
	}

	return -1
}

// Put inserts k or replaces its value. With growth disabled it returns
// ErrTableFull when neither an empty slot nor a tombstone is reachable.
func (t *Open[K, V]) Put(k K, v V) error {
	if j := t.find(k); j >= 0 {
		t.slots[j].val = v
		return nil
	}

	// Tombstones count towards the threshold so that unsuccessful searches
	// always terminate on an empty slot.
	if t.grow && float64(t.size+t.tombs+1) > t.maxLoad*float64(len(t.slots)) {
		m := len(t.slots)
		if float64(t.size+1) > t.maxLoad*float64(m) {
			m *= 2
		}
		t.resize(m)
	}

	h := t.hash(k)
	for i := 0; i < len(t.slots); i++ {
		j := t.probe(h, i)
		if t.slots[j].state == slotUsed {
			continue
		}
		if t.slots[j].state == slotDeleted {
			t.tombs--
		}
		t.slots[j] = openSlot[K, V]{key: k, val: v, state: slotUsed}
		t.size++
		return nil
	}

	return fmt.Errorf("%w: %d slots", ErrTableFull, len(t.slots))
}

// Get returns the value stored under k, or ErrKeyNotFound.
func (t *Open[K, V]) Get(k K) (V, error) {
	if j := t.find(k); j >= 0 {
		return t.slots[j].val, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Contains reports whether k is stored.
func (t *Open[K, V]) Contains(k K) bool { return t.find(k) >= 0 }

// Delete turns the slot of k into a tombstone, or returns ErrKeyNotFound.
func (t *Open[K, V]) Delete(k K) error {
	j := t.find(k)
	if j < 0 {
		return ErrKeyNotFound
	}
	t.slots[j] = openSlot[K, V]{state: slotDeleted}
	t.size--
	t.tombs++

	return nil
}

// Keys returns the stored keys in slot order, which is unspecified.
func (t *Open[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for _, s := range t.slots {
		if s.state == slotUsed {
			keys = append(keys, s.key)
		}
	}

	return keys
}

// resize rehashes live entries into m slots and drops tombstones.
func (t *Open[K, V]) resize(m int) {
	old := t.slots
	t.slots = make([]openSlot[K, V], m)
	t.size, t.tombs = 0, 0
	for _, s := range old {
		if s.state != slotUsed {
			continue
		}
		h := t.hash(s.key)
		for i := 0; i < m; i++ {
			j := t.probe(h, i)
			if t.slots[j].state == slotEmpty {
				t.slots[j] = s
				t.size++
				break
			}
		}
	}
}
