package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/core"
	"github.com/katalvlaran/clrs/dfs"
)

// ExampleTopologicalSort orders build steps.
func ExampleTopologicalSort() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("fetch", "compile", 0)
	_, _ = g.AddEdge("compile", "test", 0)
	_, _ = g.AddEdge("compile", "package", 0)
	_, _ = g.AddEdge("test", "package", 0)

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)
	// Output:
	// [fetch compile test package] <nil>
}

// ExampleStronglyConnectedComponents groups mutually reachable vertices.
func ExampleStronglyConnectedComponents() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "a", 0)
	_, _ = g.AddEdge("b", "c", 0)

	comps, _ := dfs.StronglyConnectedComponents(g)
	fmt.Println(comps)
	// Output:
	// [[a b] [c]]
}
