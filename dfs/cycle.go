package dfs

import (
	"slices"

	"github.com/katalvlaran/clrs/core"
)

// HasCycle reports whether g contains a cycle, i.e. whether a full DFS
// finds a back edge. In undirected graphs self-loops and parallel edges
// count as cycles.
func HasCycle(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	res, err := DFS(g, append(slices.Clip(opts), WithStart(""))...)
	if err != nil {
		return false, err
	}

	return len(res.BackEdges()) > 0, nil
}
