package binheap

import "cmp"

// pqEntry is one slot of the priority queue array.
type pqEntry[K comparable, P cmp.Ordered] struct {
	key  K
	prio P
}

// PriorityQueue is a min-priority queue of unique keys. It keeps an index from
// key to heap position, which makes DECREASE-KEY an O(log n) operation instead
// of the "push a duplicate and skip stale entries" trick.
type PriorityQueue[K comparable, P cmp.Ordered] struct {
	entries []pqEntry[K, P]
	index   map[K]int
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[K comparable, P cmp.Ordered]() *PriorityQueue[K, P] {
	return &PriorityQueue[K, P]{index: make(map[K]int)}
}

// Len reports the number of queued keys.
func (q *PriorityQueue[K, P]) Len() int { return len(q.entries) }

// Contains reports whether key is queued.
func (q *PriorityQueue[K, P]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Priority returns the current priority of key.
func (q *PriorityQueue[K, P]) Priority(key K) (P, bool) {
	i, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}

	return q.entries[i].prio, true
}

// Push queues key with the given priority.
func (q *PriorityQueue[K, P]) Push(key K, prio P) error {
	if _, ok := q.index[key]; ok {
		return ErrDuplicateKey
	}
	q.entries = append(q.entries, pqEntry[K, P]{key: key, prio: prio})
	last := len(q.entries) - 1
	q.index[key] = last
	q.up(last)

	return nil
}

// Pop removes and returns the key with the smallest priority.
func (q *PriorityQueue[K, P]) Pop() (K, P, error) {
	if len(q.entries) == 0 {
		var (
			zk K
			zp P
		)
		return zk, zp, ErrEmpty
	}

	top := q.entries[0]
	last := len(q.entries) - 1
	q.swap(0, last)
	q.entries = q.entries[:last]
	delete(q.index, top.key)
	if last > 0 {
		q.down(0)
	}

	return top.key, top.prio, nil
}

// Peek returns the key with the smallest priority without removing it.
func (q *PriorityQueue[K, P]) Peek() (K, P, error) {
	if len(q.entries) == 0 {
		var (
			zk K
			zp P
		)
		return zk, zp, ErrEmpty
	}

	return q.entries[0].key, q.entries[0].prio, nil
}

// Update changes the priority of a queued key, moving it up or down as needed.
func (q *PriorityQueue[K, P]) Update(key K, prio P) error {
	i, ok := q.index[key]
	if !ok {
		return ErrKeyNotFound
	}
	old := q.entries[i].prio
	q.entries[i].prio = prio
	switch {
	case prio < old:
		q.up(i)
	case prio > old:
		q.down(i)
	}

	return nil
}

func (q *PriorityQueue[K, P]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[q.entries[i].key] = i
	q.index[q.entries[j].key] = j
}

func (q *PriorityQueue[K, P]) up(i int) {
	for i > 0 {
		p := parent(i)
		if q.entries[i].prio >= q.entries[p].prio {
			return
		}
		q.swap(i, p)
		i = p
	}
}

func (q *PriorityQueue[K, P]) down(i int) {
	n := len(q.entries)
	for {
		l, r := left(i), right(i)
		smallest := i
		if l < n && q.entries[l].prio < q.entries[smallest].prio {
			smallest = l
		}
		if r < n && q.entries[r].prio < q.entries[smallest].prio {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
