package core

import "sort"

// AddVertex adds id to the graph. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacencyList[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id together with every edge touching it.
// Complexity: O(deg(id)) for undirected graphs, O(V+E) for directed ones
// (incoming edges are found by scanning).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// 1. Collect every incident edge, outgoing and incoming.
	var doomed []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			doomed = append(doomed, e)
		}
	}
	// 2. Unlink them.
	for _, e := range doomed {
		g.removeEdgeLocked(e)
	}
	// 3. Drop the vertex itself.
	delete(g.adjacencyList, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
