package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/dijkstra"
)

// ExampleDijkstra_triangle computes distances on an undirected triangle.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_thresholds treats heavy edges as walls.
func ExampleDijkstra_thresholds() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("A", "C", 10)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[C]=%d\n", dist["C"])
	// Output: dist[C]=6
}

// ExamplePathTo reconstructs a route from the predecessor map.
func ExamplePathTo() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, "A", "D")
	fmt.Println(dist["D"], path)
	// Output: 5 [A B D]
}
