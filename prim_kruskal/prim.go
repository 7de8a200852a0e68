package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clrs/binheap"
	"github.com/katalvlaran/clrs/core"
)

// Prim computes an MST with MST-PRIM from root.
//
// Steps:
//  1. Validate the graph and root.
//  2. Queue every vertex with key +∞, the root with key 0.
//  3. EXTRACT-MIN u; if its key is still +∞ the graph is disconnected.
//     Otherwise add the edge that set its key to the tree.
//  4. For each edge u–v with v still queued and w(u,v) < key[v], lower key[v]
//     (DECREASE-KEY) and remember the edge.
//
// The returned edges are oriented From the tree vertex To the newly added one,
// in the order vertices joined the tree.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	// 2. Initialize keys.
	vertices := graph.Vertices()
	pq := binheap.NewPriorityQueue[string, int64]()
	for _, v := range vertices {
		key := int64(math.MaxInt64)
		if v == root {
			key = 0
		}
		if err := pq.Push(v, key); err != nil {
			return nil, 0, err
		}
	}
	best := make(map[string]core.Edge, len(vertices))

	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for pq.Len() > 0 {
		// 3. Extract the closest vertex.
		u, key, err := pq.Pop()
		if err != nil {
			return nil, 0, err
		}
		if key == math.MaxInt64 {
			return nil, 0, fmt.Errorf("%w: %q unreachable from %q", ErrDisconnected, u, root)
		}
		if u != root {
			e := best[u]
			mst = append(mst, e)
			total += e.Weight
		}

		// 4. Relax keys of queued neighbors.
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range nbs {
			v := e.To
			cur, queued := pq.Priority(v)
			if !queued || v == u || e.Weight >= cur {
				continue
			}
			if err := pq.Update(v, e.Weight); err != nil {
				return nil, 0, err
			}
			best[v] = *e
		}
	}

	return mst, total, nil
}
