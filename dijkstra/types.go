// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrEmptyTarget     if ShortestPath is called with an empty target ID.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if Dijkstra's source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// Target           – optional; once settled, the search stops early.
// ReturnPath       – if true, Dijkstra returns the predecessor map.
// MaxDistance      – vertices farther than this are not explored (default math.MaxInt64).
// InfEdgeThreshold – edges with weight ≥ this are impassable (default math.MaxInt64).
type Options struct {
	Source           string
	Target           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	// err records the first invalid option; surfaced by Dijkstra/ShortestPath.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets a vertex whose settlement ends the search early.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values are
// recorded and reported as ErrBadMaxDistance when the search is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Non-positive values are reported as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized for the given source vertex:
// no target, no predecessor map, no distance cap, no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
