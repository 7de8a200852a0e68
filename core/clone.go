package core

// CloneEmpty returns a graph with the same flags and vertices but no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	c := &Graph{
		directed:      g.directed,
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		nextEdgeID:    g.nextEdgeID,
		vertices:      make(map[string]struct{}, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	for id := range g.vertices {
		c.addVertexLocked(id)
	}

	return c
}

// Clone returns a deep copy. Edge IDs are preserved and new edges continue
// the same numbering.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	return g.copyEdges(false)
}

// Transpose returns Gᵀ: every directed edge reversed, IDs and weights kept.
// For an undirected graph it equals Clone.
// Complexity: O(V+E)
func (g *Graph) Transpose() *Graph {
	return g.copyEdges(g.directed)
}

func (g *Graph) copyEdges(reverse bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.cloneEmptyLocked()
	for eid, e := range g.edges {
		ce := *e
		if reverse {
			ce.From, ce.To = ce.To, ce.From
		}
		c.edges[eid] = &ce
		c.link(ce.From, ce.To, eid)
		if !c.directed && ce.From != ce.To {
			c.link(ce.To, ce.From, eid)
		}
	}

	return c
}
