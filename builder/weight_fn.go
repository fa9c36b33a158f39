package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is assigned to every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces a positive edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics unless 1 ≤ min ≤ max. A nil rng yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
