package builder

import "math/rand"

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn says otherwise.
const DefaultEdgeWeight int64 = 1

// WeightFn draws an edge weight. rng is nil when no seed was configured.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [lo, hi]. Without an RNG it returns lo.
// Bounds are swapped when given in the wrong order.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
