package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn func(int) string
	// rng drives random constructors and weights; nil means no randomness.
	rng *rand.Rand
	// weightFn draws a weight for each edge of a weighted graph.
	weightFn WeightFn

	// err records the first invalid option.
	err error
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG and
// DefaultEdgeWeight for every edge.
func newBuilderConfig(opts ...BuilderOption) (builderConfig, error) {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

func (c *builderConfig) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
