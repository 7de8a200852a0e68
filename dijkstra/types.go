package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that PathTo found no route from source to target.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Inf is the distance reported for unreachable vertices.
const Inf = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string // ID of the source vertex
	MaxDistance      int64  // vertices beyond this distance are not explored
	InfEdgeThreshold int64  // edges with weight ≥ this are non-traversable

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps the explored distance. Vertices whose shortest
// distance exceeds max stay at Inf. Negative values yield ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(ErrBadMaxDistance)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Non-positive values yield ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.fail(ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no distance cap and no walls.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
