// Package shortest implements the single-source and all-pairs shortest-path
// algorithms of chapters 24 and 25 that, unlike Dijkstra, tolerate negative
// edge weights.
//
// Algorithms Provided
//
//   - BellmanFord(g, src): |V|-1 rounds of relaxing every edge, followed by a
//     check round; any further improvement proves a negative-weight cycle
//     reachable from src. Time O(V·E).
//
//   - DAG(g, src): relax edges in topological order (DAG-SHORTEST-PATHS).
//     The order comes from dfs.TopologicalSort. Time O(V + E).
//
//   - FloydWarshall(g): dynamic programming over intermediate vertices on a
//     dense |V|×|V| matrix, with a predecessor matrix for path
//     reconstruction. Time O(V³), space O(V²).
//
// Graph Semantics
//
//	Undirected edges are relaxed in both directions, so a negative
//	undirected edge is itself a negative cycle. Unweighted graphs are
//	accepted; every edge then has weight 0.
//
// Representation
//
//	Unreachable vertices have distance Inf (math.MaxInt64) and no
//	predecessor. Arithmetic never adds to Inf.
//
// Errors
//
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound: invalid inputs.
//   - ErrNegativeCycle: a negative-weight cycle makes some distance undefined.
//   - dfs.ErrCycleDetected, dfs.ErrNotDirected: DAG on a cyclic or undirected graph.
//   - ErrNoPath: PathTo or Matrix.Path asked for an unreachable target.
package shortest
