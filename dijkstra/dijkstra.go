// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// present edges of a core.Graph.
//
// Notes on implementation choices:
//
//   - Weights are strictly positive by core.Graph construction, so no
//     negative-weight pre-scan is needed.
//   - Edges on the graph's removal stack are invisible: the search runs on
//     the current, possibly edge-reduced graph and never mutates it.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Ties are broken deterministically: neighbours are relaxed in sorted ID
//     order and equal distances pop in push order (sequence number).
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlath-cut/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g over present edges.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; "" for the
//     source and for unreachable vertices.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Run
	r := newRunner(g, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the edges of a minimum-weight path from source to
// target, ordered from source to target, each edge oriented along the walk.
//
// The path is rebuilt by walking predecessor pointers backward from target.
// An empty (nil) path is returned, without error, when target is
// unreachable or when either terminal is not a vertex of g: an isolated or
// missing terminal is simply "no path". source == target also yields an
// empty path.
//
// The search stops as soon as target is settled. g is not mutated.
//
// Complexity: O((V + E) log V) worst case.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]core.Edge, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = source
	cfg.Target = target
	cfg.ReturnPath = true
	if cfg.err != nil {
		return nil, cfg.err
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Missing terminals or a degenerate query mean "no path".
	if !g.HasVertex(source) || !g.HasVertex(target) || source == target {
		return nil, nil
	}

	// 3) Search until target is settled.
	r := newRunner(g, cfg)
	r.process()
	if r.dist[target] == math.MaxInt64 {
		return nil, nil
	}

	// 4) Walk predecessors back from target, then reverse into source→target order.
	var path []core.Edge
	for v := target; v != source; {
		u := r.prev[v]
		w, _ := g.Weight(u, v)
		id, _ := g.EdgeID(u, v)
		path = append(path, core.Edge{ID: id, From: u, To: v, Weight: w})
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathWeight sums the weights along path.
func PathWeight(path []core.Edge) int64 {
	var total int64
	for _, e := range path {
		total += e.Weight
	}

	return total
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, Target, thresholds).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64            // Push counter; orders equal distances by discovery.
}

// newRunner initialises dist to +∞, prev to "", and seeds the heap with Source=0.
func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	return r
}

// push enqueues v at distance d with the next sequence number.
func (r *runner) push(v string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop. It stops when the heap is empty, when the
// minimum distance exceeds MaxDistance, or when Target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			break
		}
		r.relax(u)
	}
}

// relax examines each present edge of u and improves neighbour distances.
// Edges with weight ≥ InfEdgeThreshold are skipped as impassable.
func (r *runner) relax(u string) {
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first-discovered predecessor on ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order, used to break ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
