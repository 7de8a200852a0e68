package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/clrs/core"
)

// TopologicalSort returns the vertices of the DAG g so that every edge
// u→v has u before v (TOPOLOGICAL-SORT: decreasing finish time).
// Only WithContext is meaningful among opts.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	res, err := DFS(g, append(slices.Clip(opts), WithStart(""))...)
	if err != nil {
		return nil, err
	}
	if back := res.BackEdges(); len(back) > 0 {
		e, _ := g.GetEdge(back[0])
		return nil, fmt.Errorf("%w: edge %s %s→%s closes a cycle", ErrCycleDetected, e.ID, e.From, e.To)
	}

	order := slices.Clone(res.FinishOrder)
	slices.Reverse(order)

	return order, nil
}
