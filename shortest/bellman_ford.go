package shortest

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// BellmanFord computes single-source shortest paths from src and returns
// ErrNegativeCycle when a negative-weight cycle is reachable from src.
//
// Rounds stop early once a full pass changes nothing.
func BellmanFord(g *core.Graph, src string) (*Paths, error) {
	p, err := initSingleSource(g, src)
	if err != nil {
		return nil, err
	}

	edges := arcs(g)
	n := g.VertexCount()
	for round := 1; round < n; round++ {
		changed := false
		for _, a := range edges {
			if p.relax(a) {
				changed = true
			}
		}
		if !changed {
			return p, nil
		}
	}

	for _, a := range edges {
		if du := p.Dist[a.from]; du != Inf && du+a.w < p.Dist[a.to] {
			return nil, fmt.Errorf("%w: edge %s→%s still relaxes", ErrNegativeCycle, a.from, a.to)
		}
	}

	return p, nil
}
