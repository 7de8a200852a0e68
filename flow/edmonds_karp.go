package flow

import (
	"context"

	"github.com/katalvlaran/clrs/core"
)

// EdmondsKarp computes a maximum flow from source to sink, always augmenting
// along a shortest residual path found by breadth-first search.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	n, err := newNetwork(ctx, g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	var total int64
	var count int
	for {
		path, delta, err := n.bfsPath(ctx)
		if err != nil {
			return nil, err
		}
		if path == nil {
			break
		}
		n.augment(path, delta)
		total += delta
		count++
	}

	return n.result(total, count)
}

// bfsPath finds a fewest-arc source→sink path in G_f and its bottleneck.
// The context is checked once per dequeued vertex.
func (n *network) bfsPath(ctx context.Context) ([]string, int64, error) {
	parent := map[string]string{}
	visited := map[string]bool{n.source: true}
	queue := []string{n.source}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if visited[v] || n.res[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == n.sink {
				path := n.walk(parent)
				return path, n.bottleneck(path), nil
			}
			queue = append(queue, v)
		}
	}

	return nil, 0, nil
}
