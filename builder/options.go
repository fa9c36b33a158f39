package builder

import (
	"math/rand"
)

// Default terminal labels; they match the defaults of the cut package.
const (
	DefaultSource = "A"
	DefaultTarget = "Z"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the single source of truth for every builder knob.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn
	source   string
	target   string
	nextID   int64
}

// newBuilderConfig applies opts in order over the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	c := &builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		source:   DefaultSource,
		target:   DefaultTarget,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithIDScheme sets the generator for non-terminal vertex IDs.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithTerminals renames the two terminal vertices.
// Panics if either is empty or they coincide.
func WithTerminals(source, target string) BuilderOption {
	if source == "" || target == "" || source == target {
		panic("builder: WithTerminals needs two distinct non-empty labels")
	}
	return func(c *builderConfig) {
		c.source, c.target = source, target
	}
}
