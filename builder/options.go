package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig. Invalid values are recorded and
// reported by BuildGraph as ErrOptionViolation.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: index -> ID.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.setErr(fmt.Errorf("%w: WithIDScheme(nil)", ErrOptionViolation))
			return
		}
		c.idFn = fn
	}
}

// WithIDPrefix names vertices prefix+index, e.g. "v0", "v1".
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) string { return prefix + strconv.Itoa(i) }
	}
}

// WithRand provides an explicit RNG for random constructors and weights.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.setErr(fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation))
			return
		}
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, making random constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. It is consulted only
// when the core graph is weighted.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.setErr(fmt.Errorf("%w: WithWeightFn(nil)", ErrOptionViolation))
			return
		}
		c.weightFn = fn
	}
}
