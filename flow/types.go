package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clrs/core"
)

// Sentinel errors for max-flow computations.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("flow: source and sink are the same vertex")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	EdgeID   string
	From, To string
	Cap      int64
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %s %q→%q: %d", e.EdgeID, e.From, e.To, e.Cap)
}

// Result describes a maximum flow.
type Result struct {
	// MaxFlow is the value |f| of the flow.
	MaxFlow int64

	// Flow maps every non-loop edge ID to the flow it carries. For undirected
	// edges a negative value means the flow runs To→From.
	Flow map[string]int64

	// MinCut is the source side S of a minimum cut, sorted.
	MinCut []string

	// CutEdges lists, in creation order, the IDs of edges leaving S.
	// Their capacities sum to MaxFlow.
	CutEdges []string

	// Augmentations counts the augmenting paths used.
	Augmentations int

	// Residual is the final residual network: a directed graph with one edge
	// u→v per pair of positive residual capacity.
	Residual *core.Graph
}

// AugmentFunc observes an augmenting path and the flow pushed along it.
type AugmentFunc func(path []string, delta int64)

// Options configures a max-flow run.
type Options struct {
	OnAugment AugmentFunc
}

// Option is a functional option for FordFulkerson, EdmondsKarp and Dinic.
type Option func(*Options)

// WithOnAugment registers fn to be called after every augmentation.
func WithOnAugment(fn AugmentFunc) Option {
	return func(o *Options) { o.OnAugment = fn }
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}
