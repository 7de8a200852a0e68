package shortest

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/clrs/core"
)

// Matrix is the all-pairs result of FloydWarshall: a row-major |V|×|V|
// distance matrix plus the predecessor matrix Π, indexed by vertex ID.
type Matrix struct {
	ids   []string
	index map[string]int
	n     int
	dist  []int64 // flat, length n*n
	pred  []int   // pred[i*n+j] is the vertex before j on a shortest i→j path, -1 if none
}

// IDs returns the vertex IDs in matrix order (ascending).
func (m *Matrix) IDs() []string { return slices.Clone(m.ids) }

// At returns the shortest distance u→v, Inf if v is unreachable from u.
func (m *Matrix) At(u, v string) (int64, error) {
	i, j, err := m.cell(u, v)
	if err != nil {
		return 0, err
	}

	return m.dist[i*m.n+j], nil
}

// Row returns the distances from u to every vertex, in IDs order.
func (m *Matrix) Row(u string) ([]int64, error) {
	i, ok := m.index[u]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}

	return slices.Clone(m.dist[i*m.n : (i+1)*m.n]), nil
}

// Path returns a shortest vertex sequence u → … → v.
func (m *Matrix) Path(u, v string) ([]string, error) {
	i, j, err := m.cell(u, v)
	if err != nil {
		return nil, err
	}
	if m.dist[i*m.n+j] == Inf {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, u, v)
	}

	path := []string{m.ids[j]}
	for j != i {
		j = m.pred[i*m.n+j]
		path = append(path, m.ids[j])
	}
	slices.Reverse(path)

	return path, nil
}

func (m *Matrix) cell(u, v string) (int, int, error) {
	i, ok := m.index[u]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := m.index[v]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return i, j, nil
}

// FloydWarshall computes all-pairs shortest paths.
//
// Steps:
//  1. Build D⁽⁰⁾: 0 on the diagonal, the lightest edge weight where an edge
//     exists, Inf elsewhere; Π⁽⁰⁾ accordingly.
//  2. For k, i, j in fixed order, replace d[i][j] by d[i][k] + d[k][j] on
//     strict improvement, skipping Inf operands.
//  3. Any negative diagonal entry means a negative-weight cycle.
//
// Time O(V³); space O(V²).
func FloydWarshall(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Initial matrices.
	ids := g.Vertices()
	n := len(ids)
	m := &Matrix{
		ids:   ids,
		index: make(map[string]int, n),
		n:     n,
		dist:  make([]int64, n*n),
		pred:  make([]int, n*n),
	}
	for i, id := range ids {
		m.index[id] = i
	}
	for i := range m.dist {
		m.dist[i] = Inf
		m.pred[i] = -1
	}
	for i := 0; i < n; i++ {
		m.dist[i*n+i] = 0
	}
	for _, a := range arcs(g) {
		i, j := m.index[a.from], m.index[a.to]
		if a.w < m.dist[i*n+j] {
			m.dist[i*n+j] = a.w
			if i != j {
				m.pred[i*n+j] = i
			}
		}
	}

	// 2) Relaxation through every intermediate k.
	data := m.dist
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj == Inf {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
					m.pred[baseI+j] = m.pred[baseK+j]
				}
			}
		}
	}

	// 3) Negative cycles show up on the diagonal.
	for i := 0; i < n; i++ {
		if data[i*n+i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, ids[i])
		}
	}

	return m, nil
}
