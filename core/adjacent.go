package core

import "sort"

// Neighbors returns the edges leaving id, sorted by target and then by
// creation order. For undirected graphs every incident edge is reported
// with From == id.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	adj, ok := g.adjacencyList[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(adj))
	for to, inner := range adj {
		for eid := range inner {
			e := g.edges[eid]
			out = append(out, &Edge{ID: e.ID, From: id, To: to, Weight: e.Weight, seq: e.seq})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].seq < out[j].seq
	})

	return out, nil
}

// NeighborIDs returns the distinct vertices reachable from id by one edge,
// in ascending order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	adj, ok := g.adjacencyList[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(adj))
	for to := range adj {
		out = append(out, to)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges entering and leaving id. In an
// undirected graph both equal the degree, with a self-loop counted once.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, inner := range g.adjacencyList[id] {
		out += len(inner)
	}
	if !g.directed {
		return out, out, nil
	}
	for _, e := range g.edges {
		if e.To == id {
			in++
		}
	}

	return in, out, nil
}
