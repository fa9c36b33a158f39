package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-cut/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each
// constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a weight, assigns the next identifier and inserts u-v.
// Rejections wrap both ErrConstructFailed and the core cause.
func (c *builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	c.nextID++
	w := c.weightFn(c.rng)
	if err := g.AddEdge(u, v, w, c.nextID); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
