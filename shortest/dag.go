package shortest

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/dfs"
)

// DAG computes single-source shortest paths in a directed acyclic graph by
// relaxing the edges out of each vertex in topological order. Negative
// weights are allowed. A cyclic graph yields dfs.ErrCycleDetected.
func DAG(g *core.Graph, src string) (*Paths, error) {
	p, err := initSingleSource(g, src)
	if err != nil {
		return nil, err
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("shortest: %w", err)
	}

	for _, u := range order {
		if p.Dist[u] == Inf {
			continue
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range nbs {
			p.relax(arc{u, e.To, e.Weight})
		}
	}

	return p, nil
}
