// Package core defines the Graph and Edge types shared by the graph
// algorithms of this module (bfs, dfs, prim_kruskal, dijkstra, shortest,
// flow) and provides thread-safe primitives for building, querying and
// cloning graphs.
//
// What:
//
//   - Vertices are identified by non-empty strings.
//   - Edges carry a generated ID ("e1", "e2", ...), endpoints and an int64
//     weight (a length for shortest paths, a capacity for flows).
//   - A Graph is either directed or undirected as a whole, and optionally
//     weighted, looped (self-loops) and multi (parallel edges).
//
// Determinism:
//
//   - Vertices() is sorted by ID.
//   - Edges() is sorted by creation order.
//   - Neighbors() is sorted by target ID, then creation order.
//
// Algorithms rely on this ordering to produce reproducible traversals.
//
// Concurrency:
//
//	All methods take an internal sync.RWMutex; readers run in parallel.
//	Returned edges are copies, so callers may keep or modify them freely.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
