// Package cut provides options, observer hooks, results and error
// definitions for the minimum-cost terminal-disconnection search.
package cut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for cut search and verification.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("cut: graph is nil")

	// ErrSameTerminal is returned when source and target coincide;
	// a vertex cannot be separated from itself.
	ErrSameTerminal = errors.New("cut: source and target coincide")

	// ErrPendingRemovals is returned when the graph enters the search with a
	// non-empty removal stack.
	ErrPendingRemovals = errors.New("cut: graph has pending removals")

	// ErrTimeLimit is returned when the time budget runs out. The best
	// incumbent found so far is returned alongside.
	ErrTimeLimit = errors.New("cut: time limit exceeded")

	// ErrExpansionLimit is returned when the node budget runs out. The best
	// incumbent found so far is returned alongside.
	ErrExpansionLimit = errors.New("cut: expansion limit exceeded")

	// ErrBadOption is recorded by an Option given an invalid value.
	ErrBadOption = errors.New("cut: invalid option")

	// ErrUnknownEdgeID is returned by Verify for an id the graph never bound.
	ErrUnknownEdgeID = errors.New("cut: unknown edge identifier")
)

// Default terminal names.
const (
	DefaultSource = "A"
	DefaultTarget = "Z"
)

// Observer receives search events. Implementations must be cheap: they run
// on the hot path of the search.
type Observer interface {
	// OnExpand is called once per search node, with the node's depth
	// (number of removed edges) and accumulated cost.
	OnExpand(depth int, cost int64)

	// OnSolution is called whenever a strictly cheaper cut is found.
	// ids is sorted ascending and owned by the observer.
	OnSolution(ids []int64, cost int64)

	// OnPrune is called whenever a branch is cut off by the incumbent.
	OnPrune(depth int, cost int64)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnExpand(int, int64)       {}
func (NopObserver) OnSolution([]int64, int64) {}
func (NopObserver) OnPrune(int, int64)        {}

// Options configures Search.
type Options struct {
	// Source and Target are the terminals to separate.
	Source, Target string

	// TimeLimit, if > 0, bounds the wall-clock duration of the search.
	TimeLimit time.Duration

	// MaxExpansions, if > 0, bounds the number of search nodes.
	MaxExpansions int64

	// Ctx allows cancellation from the caller.
	Ctx context.Context

	// EagerPrune skips a path edge before descending when removing it alone
	// already reaches the incumbent cost.
	EagerPrune bool

	// FlowBound prunes a node when its cost plus the max-flow between the
	// terminals of the current graph reaches the incumbent cost.
	FlowBound bool

	// Observer receives search events; defaults to NopObserver.
	Observer Observer

	// Logger, if non-nil, receives debug records for new incumbents.
	Logger *slog.Logger

	now func() time.Time
	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns the plain search between "A" and "Z" with no
// budget and no extra pruning.
func DefaultOptions() Options {
	return Options{
		Source:   DefaultSource,
		Target:   DefaultTarget,
		Ctx:      context.Background(),
		Observer: NopObserver{},
		now:      time.Now,
	}
}

// WithTerminals sets the vertices to separate.
func WithTerminals(source, target string) Option {
	return func(o *Options) {
		o.Source, o.Target = source, target
	}
}

// WithTimeLimit bounds the search duration; d == 0 disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative time limit %v", ErrBadOption, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxExpansions bounds the number of search nodes; n == 0 disables the limit.
func WithMaxExpansions(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: negative expansion limit %d", ErrBadOption, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEagerPrune enables the per-edge admissible skip.
func WithEagerPrune() Option {
	return func(o *Options) { o.EagerPrune = true }
}

// WithFlowBound enables the max-flow lower bound.
func WithFlowBound() Option {
	return func(o *Options) { o.FlowBound = true }
}

// WithObserver registers a search observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger sets a logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded  int64
	Solutions int64
	Pruned    int64
	MaxDepth  int
	Elapsed   time.Duration
}

// Result is the outcome of Search.
//   - IDs: identifiers of the cheapest cut found, ascending.
//   - Cost: total weight of IDs.
//   - Found: false only when a budget ran out before any cut was seen.
type Result struct {
	IDs   []int64
	Cost  int64
	Found bool
	Stats Stats
}
