// Package flow computes maximum flows (chapter 26) on *core.Graph networks
// whose edge weights are capacities.
//
// Algorithms
//
//   - FordFulkerson: augment along any s→t path of the residual network,
//     found by depth-first search. Time O(E · f*) for integral capacities,
//     where f* is the value of a maximum flow.
//
//   - EdmondsKarp: augment along a shortest (fewest edges) residual path,
//     found by breadth-first search. Time O(V · E²).
//
//   - Dinic: phases of blocking flow on the BFS level graph, with a
//     current-arc pointer per vertex. Time O(V² · E).
//
// All three return a Result holding the flow value, the flow carried by every
// original edge, the source side of a minimum cut, the edges crossing that
// cut and the final residual network.
//
// Graph Support
//
//	– Directed networks: capacity c(u, v) is the sum of all parallel u→v edges.
//	– Undirected networks: every edge contributes its capacity in both directions.
//	– Antiparallel edges are handled through net flow, so the residual network
//	  never needs auxiliary vertices.
//	– Self-loops carry no flow and are ignored.
//	– Unweighted graphs have zero capacities and a zero flow.
//
// Determinism
//
//	Residual neighbors are scanned in ascending ID order, so the augmenting
//	paths, and therefore the per-edge Flow assignment, are reproducible.
//	Net flow between two vertices is split over parallel edges in creation
//	order, filling each edge before the next.
//
// Errors
//
//	ErrNilGraph       - the graph is nil.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSameSourceSink - source and sink are the same vertex.
//	*EdgeError        - an edge has negative capacity (use errors.As).
//	context.Canceled / context.DeadlineExceeded - ctx ended before completion.
//
// Options
//
//	WithOnAugment(fn) calls fn with every augmenting path and its
//	bottleneck, which is how the demonstration CLI traces a run.
package flow
