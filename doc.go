// Package clrs is a pedagogical collection of the classic algorithms from
// "Introduction to Algorithms" (Cormen, Leiserson, Rivest, Stein), written
// as small, well-tested Go packages.
//
// 🚀 What is inside?
//
//	Sorting & order statistics:
//		• sorting     – bubble, insertion, merge, quick, heap, counting, radix, bucket, parallel merge
//		• selection   – min/max, RANDOMIZED-SELECT, median-of-medians SELECT
//		• maxsubarray – brute force, divide & conquer, Kadane
//	Data structures:
//		• binheap     – binary heap + keyed priority queue with decrease-key
//		• hashtable   – chaining & open addressing
//		• bst, rbtree – binary search tree, red-black tree
//		• disjointset – union by rank + path compression
//	Dynamic programming:
//		• dynprog     – rod cutting, matrix-chain order, LCS, edit distance, DTW
//	Graphs:
//		• core, builder – thread-safe adjacency-list graph + deterministic generators
//		• bfs, dfs      – traversals, topological sort, SCC, cycle detection
//		• prim_kruskal  – minimum spanning trees
//		• dijkstra      – single-source shortest paths, non-negative weights
//		• shortest      – Bellman-Ford, DAG shortest paths, Floyd-Warshall
//		• flow          – Ford-Fulkerson, Edmonds-Karp, minimum cut
//
// ✨ Conventions
//
//   - Package-prefixed sentinel errors, wrapped with %w; check with errors.Is.
//   - Functional options (WithX) with DefaultOptions() where a call has knobs.
//   - Long-running traversals accept a context.Context.
//   - Libraries never log; the clrs command does.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──3──D
//
// prim_kruskal.Kruskal on this square returns A-B, B-D, C-D with total 6.
//
// The clrs command (cmd/clrs) runs the algorithms from a terminal:
//
//	go run ./cmd/clrs sort --algo heap 5 2 9 1
//	go run ./cmd/clrs graph dijkstra --file g.yaml --source a
package clrs
