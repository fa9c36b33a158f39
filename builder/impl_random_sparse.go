package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-cut/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices: the source, idFn(1)..idFn(n-2), and the target. Each
// unordered pair is included independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Trial order is i asc, then j asc with j > i, so a fixed seed always
// yields the same graph. The terminals may end up disconnected.
//
// Complexity: O(n²) Bernoulli trials, O(n) extra space for the labels.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		labels := make([]string, n)
		labels[0], labels[n-1] = cfg.source, cfg.target
		for i := 1; i < n-1; i++ {
			labels[i] = cfg.idFn(i)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := cfg.addEdge(g, methodRandomSparse, labels[i], labels[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial draws one Bernoulli(p) outcome; p of 0 or 1 needs no RNG.
func trial(cfg *builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
