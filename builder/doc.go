// Package builder constructs deterministic core.Graph fixtures for the graph
// algorithms and their tests.
//
// What:
//
//   - Path(n), Cycle(n), Complete(n), Grid(rows, cols): classic topologies.
//   - RandomSparse(n, p): Erdős–Rényi G(n, p), reproducible with WithSeed.
//
// How:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Cycle(5),
//	)
//
// Graph mode (directed, weighted, loops) comes from the core options; the
// builder options choose vertex IDs, randomness and weights. Constructors
// run in order on one graph, so several can be combined.
//
// Determinism: the same options, seed and constructor order always yield
// identical graphs, including edge IDs.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the topology's minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrNeedRandSource     - a random constructor without WithSeed/WithRand.
//	ErrOptionViolation    - an option was given an invalid value.
//	ErrConstructFailed    - a nil constructor was passed to BuildGraph.
package builder
