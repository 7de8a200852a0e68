package flow

import (
	"context"

	"github.com/katalvlaran/clrs/core"
)

// Dinic computes a maximum flow from source to sink with Dinic's blocking-flow
// algorithm.
//
// Steps:
//  1. Build the residual network (validating inputs and capacities).
//  2. Repeat phases until the sink is unreachable in G_f:
//     a. BFS from source assigns every vertex its level (distance in G_f).
//     b. Saturate the level graph, the arcs u→v of G_f with
//     level[v] = level[u]+1, by augmenting along its paths. A current-arc
//     pointer per vertex skips arcs that are saturated or lead to dead ends,
//     so each arc is discarded at most once per phase.
//  3. Derive per-edge flows, the minimum cut and the residual graph.
//
// Every augmenting path counts towards Result.Augmentations and is reported
// to the OnAugment hook, exactly as in EdmondsKarp.
//
// Complexity: O(V² · E) time, O(V + E) memory.
func Dinic(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	// 1) Residual network
	n, err := newNetwork(ctx, g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	// 2) Phases
	var total int64
	var count int
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		level := n.levels()
		if _, ok := level[n.sink]; !ok {
			break
		}

		next := make(map[string]int, len(level))
		for {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			path := n.levelPath(level, next)
			if path == nil {
				break
			}
			delta := n.bottleneck(path)
			n.augment(path, delta)
			total += delta
			count++
		}
	}

	// 3) Final result
	return n.result(total, count)
}

// levels maps every vertex reachable from the source in G_f to its BFS depth.
func (n *network) levels() map[string]int {
	level := map[string]int{n.source: 0}
	queue := []string{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if _, seen := level[v]; seen || n.res[u][v] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// levelPath walks the level graph from the source using the current-arc
// pointers in next, and returns a source→sink path or nil when the phase's
// flow is blocking. Dead-end vertices are retreated from and their parent's
// pointer advanced past them.
func (n *network) levelPath(level map[string]int, next map[string]int) []string {
	path := []string{n.source}
	for len(path) > 0 {
		u := path[len(path)-1]
		if u == n.sink {
			return path
		}

		advanced := false
		for next[u] < len(n.adj[u]) {
			v := n.adj[u][next[u]]
			if lv, ok := level[v]; ok && lv == level[u]+1 && n.res[u][v] > 0 {
				path = append(path, v)
				advanced = true
				break
			}
			next[u]++
		}
		if !advanced {
			path = path[:len(path)-1]
			if len(path) > 0 {
				next[path[len(path)-1]]++
			}
		}
	}

	return nil
}
