// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm (section 24.3) on weighted graphs with non-negative weights.
//
// The algorithm keeps every discovered but unfinished vertex in a min
// priority queue keyed by its tentative distance d[v]. Each iteration
// extracts the closest vertex u, finalizes d[u] and relaxes every edge
// (u, v): if d[u] + w(u, v) < d[v], then d[v] and π[v] are lowered and the
// queue entry for v is updated in place with DECREASE-KEY. The queue is a
// binheap.PriorityQueue, so each operation costs O(log V).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Options:
//
//   - Source(id):              start vertex (required).
//   - WithMaxDistance(d):      vertices farther than d are left unreached (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are treated as walls (t > 0).
//
// Errors:
//
//   - ErrEmptySource     if no source was given.
//   - ErrNilGraph        if the graph is nil.
//   - ErrUnweightedGraph if the graph was not built with core.WithWeighted.
//   - ErrVertexNotFound  if the source is not in the graph.
//   - ErrNegativeWeight  if any edge weight is negative.
//   - ErrBadMaxDistance  if WithMaxDistance received a negative value.
//   - ErrBadInfThreshold if WithInfEdgeThreshold received a non-positive value.
//
// Option errors are recorded when the option is applied and reported by
// Dijkstra, so option constructors never panic.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(prev, "A", "D")
//	fmt.Println(dist["D"], path)
package dijkstra
