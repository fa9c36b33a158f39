// Package bfs provides breadth-first search over the present edges of a
// core.Graph, returning hop-count distances, parent links, and visit order.
//
// Edge weights are ignored. Edges on the graph's removal stack are not
// traversed, which makes BFS the cheapest way to ask whether a proposed
// cut really separates two vertices.
package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlath-cut/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Connected reports whether b is reachable from a over present edges.
// A missing endpoint is disconnected by definition; a == b is connected
// iff the vertex exists. opts may restrict the walk (WithFilterNeighbor,
// WithMaxDepth, WithContext); a WithOnVisit hook is replaced.
func Connected(g *core.Graph, a, b string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false, nil
	}

	found := false
	opts = append(slices.Clone(opts), WithOnVisit(func(id string, _ int) error {
		if id == b {
			found = true
			return errStop
		}
		return nil
	}))
	_, err := BFS(g, a, opts...)
	if err != nil && !found {
		return false, err
	}

	return found, nil
}

// errStop ends a traversal early once its goal is met.
var errStop = errors.New("bfs: stop")

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.NeighborIDs(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
