package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-cut/core"
)

const (
	methodLadder = "Ladder"
	minRungs     = 1
)

// Ladder returns a Constructor that builds two rails of n rungs each; the
// source feeds the first rung and the last rung drains into the target.
//
// Vertex IDs: the top vertex of rung i is idFn(2i+1), the bottom idFn(2i+2).
// Edge order: source→top₀, source→bottom₀, then per rung the rung itself
// followed by the two rail segments, then top/bottom of the last rung into
// the target.
//
// Complexity: O(n) time, O(1) extra space.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minRungs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minRungs, ErrTooFewVertices)
		}
		top := func(i int) string { return cfg.idFn(2*i + 1) }
		bot := func(i int) string { return cfg.idFn(2*i + 2) }

		type link struct{ u, v string }
		links := make([]link, 0, 3*n+2)
		links = append(links, link{cfg.source, top(0)}, link{cfg.source, bot(0)})
		for i := 0; i < n; i++ {
			links = append(links, link{top(i), bot(i)})
			if i+1 < n {
				links = append(links, link{top(i), top(i + 1)}, link{bot(i), bot(i + 1)})
			}
		}
		links = append(links, link{top(n - 1), cfg.target}, link{bot(n - 1), cfg.target})

		for _, l := range links {
			if err := cfg.addEdge(g, methodLadder, l.u, l.v); err != nil {
				return err
			}
		}

		return nil
	}
}
