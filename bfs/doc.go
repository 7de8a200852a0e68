// Package bfs provides breadth-first search over a core.Graph (BFS,
// chapter 22), returning unweighted shortest-path distances, parent links
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Return a BFSResult with Order (visit sequence), Depth (distance in
//     edges) and Parent (predecessor in the BFS tree).
//   - Hooks at three stages: OnEnqueue (a vertex turns gray), OnDequeue
//     (immediately before visiting) and OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual neighbor links; WithMaxDepth caps
//     the search radius (0 means unlimited).
//
// Edge weights are ignored: every edge counts as length one. Use package
// dijkstra or shortest for weighted distances.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted by ID and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped errors returned by OnVisit, and context errors.
package bfs
