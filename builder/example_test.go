package builder_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/builder"
	"github.com/katalvlaran/clrs/core"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithIDPrefix("v"), builder.WithWeightFn(builder.ConstantWeightFn(7))},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To, e.Weight)
	}
	// Output:
	// e1 v0 v1 7
	// e2 v1 v2 7
	// e3 v2 v3 7
	// e4 v3 v0 7
}
