// Package cut implements a branch-and-bound search for the cheapest set of
// edges whose removal disconnects two terminals.
//
// Search enumerates cuts by repeatedly asking for the current shortest
// source→target path: any separating set must contain at least one of its
// edges, so the search branches on removing each of them in turn, starting
// with the edge that touches the target.
//
// Rationale (succinct):
//  1. The graph is mutated in place through its removal stack. Every
//     removal is paired with a deferred restore, so each exit route
//     (including budget errors) leaves the graph in its entry state.
//  2. Incumbent (UB): the cheapest disconnecting stack seen so far. Once
//     the accumulated cost reaches it after a branch returns, the remaining
//     edges of that path are abandoned.
//  3. Optional pruning, both admissible:
//     - EagerPrune skips an edge when cost + w(edge) ≥ UB.
//     - FlowBound prunes a node when cost + maxflow(source, target) ≥ UB.
//  4. Budgets: a context, a soft time limit (sparse checks every 256 nodes)
//     and a node budget. A budget error still reports the incumbent.
//
// Complexity:
//   - Worst case exponential in the number of path edges.
//   - Per node: one Dijkstra run O((V + E) log V), plus O(V · E²) with FlowBound.
//   - Memory: O(depth) recursion plus the removal stack.
package cut

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/dijkstra"
	"github.com/katalvlaran/lvlath-cut/flow"
)

// engine holds all search data and policies for one Search call.
type engine struct {
	g    *core.Graph
	opts Options

	// Budgets
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int

	// Current best incumbent (UB)
	best     []int64
	bestCost int64
	found    bool

	stats Stats
}

// deadlineCheck performs a sparse deadline test: on the first node and then
// every 256 nodes.
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps != 1 && e.steps&255 != 0) {
		return false
	}

	return e.opts.now().After(e.deadline)
}

// checkBudget reports the first exhausted budget, if any.
func (e *engine) checkBudget() error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.opts.MaxExpansions > 0 && e.stats.Expanded >= e.opts.MaxExpansions {
		return ErrExpansionLimit
	}
	if e.deadlineCheck() {
		return ErrTimeLimit
	}

	return nil
}

// record commits the current removal stack as the new incumbent.
func (e *engine) record() {
	e.best = e.g.RemovedEdgeIDs()
	e.bestCost = e.g.Cost()
	e.found = true
	e.stats.Solutions++

	ids := make([]int64, len(e.best))
	copy(ids, e.best)
	e.opts.Observer.OnSolution(ids, e.bestCost)
	if e.opts.Logger != nil {
		e.opts.Logger.Debug("cut: new incumbent", "ids", e.best, "cost", e.bestCost, "expanded", e.stats.Expanded)
	}
}

// prune counts an abandoned branch.
func (e *engine) prune(depth int, cost int64) {
	e.stats.Pruned++
	e.opts.Observer.OnPrune(depth, cost)
}

// search expands one node: the graph as it stands with depth edges removed.
func (e *engine) search(depth int) error {
	if err := e.checkBudget(); err != nil {
		return err
	}
	cost := e.g.Cost()
	e.stats.Expanded++
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}
	e.opts.Observer.OnExpand(depth, cost)

	path, err := dijkstra.ShortestPath(e.g, e.opts.Source, e.opts.Target)
	if err != nil {
		return err
	}

	// Terminals separated: the stack is a cut.
	if len(path) == 0 {
		if cost < e.bestCost {
			e.record()
		}

		return nil
	}

	if e.opts.FlowBound && e.found {
		lb, err := flow.EdmondsKarp(e.ctx, e.g, e.opts.Source, e.opts.Target, nil)
		if err != nil {
			return err
		}
		if cost+lb.Value >= e.bestCost {
			e.prune(depth, cost)
			return nil
		}
	}

	// Target end first. Among equal-cost cuts the first one recorded wins.
	for i := len(path) - 1; i >= 0; i-- {
		edge := path[i]
		if e.opts.EagerPrune && cost+edge.Weight >= e.bestCost {
			e.prune(depth, cost+edge.Weight)
			continue
		}
		if err = e.branch(edge, depth+1); err != nil {
			return err
		}
		if e.g.Cost() >= e.bestCost {
			e.prune(depth, cost)
			break
		}
	}

	return nil
}

// branch removes edge, searches below it, and restores it on every exit.
func (e *engine) branch(edge core.Edge, depth int) (err error) {
	if _, err = e.g.RemoveEdge(edge.From, edge.To); err != nil {
		return err
	}
	defer func() {
		if _, rerr := e.g.RestoreEdge(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return e.search(depth)
}

// Search finds the cheapest set of edges whose removal disconnects the
// source from the target (default "A" and "Z").
//
// The graph must enter with an empty removal stack and leaves in the same
// state. Terminals that are absent or already disconnected yield an empty
// cut of cost 0.
//
// Errors:
//   - ErrNilGraph, ErrSameTerminal, ErrPendingRemovals, ErrBadOption for bad input.
//   - ErrTimeLimit, ErrExpansionLimit or the context error when a budget runs
//     out; Result then holds the best incumbent so far (Found reports whether
//     there is one).
func Search(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if o.Source == o.Target {
		return Result{}, ErrSameTerminal
	}
	if g.Depth() != 0 {
		return Result{}, ErrPendingRemovals
	}

	e := engine{
		g:        g,
		opts:     o,
		ctx:      o.Ctx,
		bestCost: math.MaxInt64,
	}
	start := o.now()
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(o.TimeLimit)
	}

	err := e.search(0)
	e.stats.Elapsed = o.now().Sub(start)

	res := Result{Found: e.found, Stats: e.stats}
	if e.found {
		res.IDs = e.best
		res.Cost = e.bestCost
	}

	return res, err
}
