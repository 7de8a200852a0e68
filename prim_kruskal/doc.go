// Package prim_kruskal computes a minimum spanning tree (chapter 23) of an
// undirected, weighted *core.Graph with Prim's or Kruskal's algorithm.
//
// What & Why
//
//	Given a connected, undirected, weighted graph G = (V, E), an MST is a
//	subset T ⊆ E that connects every vertex and has minimal total weight.
//	Both algorithms are greedy and rely on the cut property: the lightest
//	edge crossing any cut that respects the current forest is safe to add.
//
// Algorithms Provided
//
//   - Kruskal(g): sort all edges by weight and add each edge whose endpoints
//     lie in different trees, tracked with a disjointset.Forest.
//     Time O(E log E), space O(V + E).
//
//   - Prim(g, root): grow one tree from root; every outside vertex is kept
//     in a binheap.PriorityQueue keyed by the lightest edge linking it to the
//     tree, lowered with decrease-key as the tree grows.
//     Time O(E log V), space O(V).
//
//   - Compute(g, opts): dispatch by MSTOptions.Method.
//
// Determinism
//
//	Kruskal stable-sorts edges in creation order, so ties are broken by edge
//	ID. Prim scans neighbors in core order and only replaces a candidate
//	edge with a strictly lighter one. The total weight never depends on ties.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil graph, directed graph or unweighted graph.
//   - ErrEmptyRoot: Prim with root == "".
//   - core.ErrVertexNotFound: Prim with an unknown root.
//   - ErrDisconnected: empty graph, or a graph with more than one component.
//   - ErrUnknownMethod: Compute with an unsupported method name.
//
// Self-loops never belong to a spanning tree and are ignored.
package prim_kruskal
