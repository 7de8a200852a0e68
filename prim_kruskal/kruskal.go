package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/disjointset"
)

// Kruskal computes an MST with MST-KRUSKAL.
//
// Steps:
//  1. Validate the graph.
//  2. MAKE-SET for every vertex.
//  3. Stable-sort the non-loop edges by weight.
//  4. Add each edge joining two different sets, then UNION them.
//  5. Fewer than |V|-1 edges means the graph is disconnected.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	// 2. One set per vertex.
	vertices := graph.Vertices()
	forest := disjointset.New(vertices...)

	// 3. Candidate edges, lightest first.
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 4. Greedy selection.
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		merged, err := forest.Union(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: union %s-%s: %w", e.From, e.To, err)
		}
		if !merged {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	// 5. Spanning check.
	if forest.Count() != 1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, forest.Count())
	}

	return mst, total, nil
}
