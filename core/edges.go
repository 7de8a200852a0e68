package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix yields human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Missing endpoints are added first.
//
// Steps:
//  1. Validate IDs, weight and loop constraint.
//  2. Add endpoints.
//  3. Check the multi-edge constraint (covers both directions when undirected).
//  4. Generate the ID and link the adjacency, mirrored for undirected graphs.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge existence check
	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link
	g.nextEdgeID++
	seq := g.nextEdgeID
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, seq, 10))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	g.link(from, to, eid)
	if !g.directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacencyList[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacencyList[from][to] = inner
	}
	inner[eid] = struct{}{}
}

func (g *Graph) unlink(from, to, eid string) {
	inner := g.adjacencyList[from][to]
	delete(inner, eid)
	if len(inner) == 0 {
		delete(g.adjacencyList[from], to)
	}
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	g.unlink(e.From, e.To, e.ID)
	if !g.directed && e.From != e.To {
		g.unlink(e.To, e.From, e.ID)
	}
}

// HasEdge reports whether at least one edge leads from→to. For undirected
// graphs the direction does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		c := *e
		out = append(out, &c)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
