package flow

import (
	"context"

	"github.com/katalvlaran/clrs/core"
)

// FordFulkerson computes a maximum flow from source to sink using the
// Ford–Fulkerson method with depth-first search for augmenting paths.
//
// Steps:
//  1. Build the residual network (validating inputs and capacities).
//  2. Repeat until no augmenting path remains:
//     a. Check ctx for cancellation.
//     b. DFS from source over arcs with positive residual capacity.
//     c. Push the bottleneck along the path found.
//  3. Derive per-edge flows, the minimum cut and the residual graph.
//
// Complexity: O(E · f*) time, O(V + E) memory.
func FordFulkerson(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	// 1) Residual network
	n, err := newNetwork(ctx, g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	// 2) Augment until the sink is unreachable.
	var total int64
	var count int
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		path, delta := n.dfsPath()
		if path == nil {
			break
		}
		n.augment(path, delta)
		total += delta
		count++
	}

	// 3) Final result
	return n.result(total, count)
}

// dfsPath finds any source→sink path in G_f with an explicit stack and
// returns it with its bottleneck, or nil when the sink is unreachable.
func (n *network) dfsPath() ([]string, int64) {
	type frame struct {
		node string
		next int // index into adj[node] of the next arc to try
	}

	parent := map[string]string{}
	visited := map[string]bool{n.source: true}
	stack := []frame{{node: n.source}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.node
		if top.next == len(n.adj[u]) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := n.adj[u][top.next]
		top.next++
		if visited[v] || n.res[u][v] <= 0 {
			continue
		}
		visited[v] = true
		parent[v] = u
		if v == n.sink {
			path := n.walk(parent)
			return path, n.bottleneck(path)
		}
		stack = append(stack, frame{node: v})
	}

	return nil, 0
}

// bottleneck is the residual capacity c_f(p) of path p.
func (n *network) bottleneck(path []string) int64 {
	b := n.res[path[0]][path[1]]
	for i := 1; i+1 < len(path); i++ {
		b = min(b, n.res[path[i]][path[i+1]])
	}

	return b
}
