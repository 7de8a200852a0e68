package dfs

import (
	"slices"
	"strings"

	"github.com/katalvlaran/clrs/core"
)

// StronglyConnectedComponents returns the strongly connected components of
// g (STRONGLY-CONNECTED-COMPONENTS):
//
//  1. DFS on g to get finish times.
//  2. Build Gᵀ.
//  3. DFS on Gᵀ taking roots in decreasing finish time; each tree is a component.
//
// Vertices inside a component are sorted and components are ordered by their
// smallest vertex. For undirected graphs the result is the connected components.
// Only WithContext is meaningful among opts.
func StronglyConnectedComponents(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1. First pass.
	first, err := DFS(g, append(slices.Clip(opts), WithStart(""))...)
	if err != nil {
		return nil, err
	}

	// 2. Transpose.
	gt := g.Transpose()

	// 3. Second pass in decreasing finish time.
	order := slices.Clone(first.FinishOrder)
	slices.Reverse(order)
	second, err := DFS(gt, append(slices.Clip(opts), WithStart(""), withRootOrder(order))...)
	if err != nil {
		return nil, err
	}

	comps := make([][]string, 0, len(second.Forest))
	for _, tree := range second.Forest {
		c := slices.Clone(tree)
		slices.Sort(c)
		comps = append(comps, c)
	}
	slices.SortFunc(comps, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})

	return comps, nil
}
