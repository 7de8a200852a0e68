package flow_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/katalvlaran/clrs/flow"
)

// BenchmarkFlowAlgorithms compares Ford-Fulkerson, Edmonds-Karp and Dinic on random
// networks of increasing size.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 50, 0.1, 42},
		{"Medium", 150, 0.05, 7},
	}

	for _, tc := range cases {
		g := buildRandomGraph(b, tc.vertices, tc.edgeProb, 100, tc.seed)
		sink := strconv.Itoa(tc.vertices - 1)

		b.Run(tc.name+"/FordFulkerson", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = flow.FordFulkerson(context.Background(), g, "0", sink)
			}
		})
		b.Run(tc.name+"/EdmondsKarp", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = flow.EdmondsKarp(context.Background(), g, "0", sink)
			}
		})
		b.Run(tc.name+"/Dinic", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = flow.Dinic(context.Background(), g, "0", sink)
			}
		})
	}
}
