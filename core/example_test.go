package core_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// ExampleGraph demonstrates basic creation, mutation and queries.
func ExampleGraph() {
	// 1) Undirected, unweighted graph; AddEdge auto-adds vertices.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	// 2) Inspect.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 3) Remove a vertex and its edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B: [A C] 1
}

// ExampleGraph_Transpose reverses a directed graph.
func ExampleGraph_Transpose() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("u", "v", 3)

	for _, e := range g.Transpose().Edges() {
		fmt.Println(e.ID, e.From, "→", e.To, e.Weight)
	}
	// Output:
	// e1 v → u 3
}
