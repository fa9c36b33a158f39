package flow

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors for max-flow computation.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned in strict mode when the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned in strict mode when the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameTerminal is returned when source and sink are the same vertex;
	// the flow between a vertex and itself is undefined.
	ErrSameTerminal = errors.New("flow: source and sink coincide")
)

// FlowOptions configures both max-flow algorithms.
//   - Strict: report missing terminals as errors instead of a zero flow.
//   - Logger: if non-nil, each augmentation is logged at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Strict               bool
	Logger               *slog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns lenient options with no logging.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// Result is the outcome of a max-flow run.
//   - Value: the maximum flow, equal to the weight of a minimum cut.
//   - SourceSide: vertices still reachable from the source in the final
//     residual network, sorted ascending.
//   - CutIDs: ids of present edges crossing from SourceSide to the rest,
//     ascending. Their weights sum to Value.
type Result struct {
	Value      int64
	SourceSide []string
	CutIDs     []int64
}

// resolve normalises a nil context and nil options.
func resolve(ctx context.Context, opts *FlowOptions) (context.Context, FlowOptions) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	return ctx, o
}
