// Package dfs implements depth-first search (chapter 22) and the algorithms
// built on it: topological sort, strongly connected components and cycle
// detection.
//
// What:
//
//   - DFS: the full textbook DFS. Every vertex is used as a root in sorted
//     order (or only one, with WithStart), and the result records discovery
//     and finish timestamps, parents, the DFS forest and a class for every
//     edge (tree, back, forward, cross).
//   - TopologicalSort: vertices of a DAG in decreasing finish time.
//   - StronglyConnectedComponents: Kosaraju's two-pass algorithm on G and Gᵀ.
//   - HasCycle: true when DFS finds a back edge.
//
// Key Types & Constants:
//
//   - White, Gray, Black: vertex colors during the search.
//   - EdgeClass: Tree, Back, Forward, Cross.
//   - DFSOptions: Context, Start, OnVisit and OnExit hooks.
//   - DFSResult: timestamps, parents, orders, forest and edge classes.
//
// In undirected graphs every edge is classified once, from the endpoint that
// explores it first, and is always a tree or back edge. The tree edge back
// to a vertex's parent is not reported a second time.
//
// Determinism: roots are taken in core.Vertices order and neighbors in
// core.Neighbors order, so timestamps are reproducible.
//
// Complexity: every function runs in O(V+E) time and O(V+E) memory.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  WithStart names an unknown vertex
//   - ErrNotDirected          TopologicalSort on an undirected graph
//   - ErrCycleDetected        TopologicalSort found a back edge
//   - context errors          DFS canceled via WithContext
//   - hook errors             propagated from OnVisit or OnExit
package dfs
