// File: methods_edges.go
// Role: Edge construction and queries: AddEdge/HasEdge/Weight/EdgeID/Edges/
//       AllEdges/EdgeCount/WeightOf.
// Determinism:
//   - Edges() and AllEdges() return edges sorted by Edge.ID asc.
//   - Returned edges are oriented lo→hi by vertex ID.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v} with weight w and identifier id.
//
// Steps:
//  1. Refuse while the removal stack is non-empty (construction precedes search).
//  2. Validate endpoints, loop, weight budget, identifier sign.
//  3. Check the pair and the identifier are both unused.
//  4. Ensure adjacency buckets, write both directions, index the identifier.
//
// Every rejection wraps ErrInvalidEdge together with the precise cause.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w int64, id int64) error {
	// 1) Construction is add-only and happens before any removal.
	if len(g.removed) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEdge, ErrRemovalInProgress)
	}

	// 2) Input validation
	if u == "" || v == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEdge, ErrEmptyVertexID)
	}
	if u == v {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEdge, ErrLoopNotAllowed, u)
	}
	if w <= 0 {
		return fmt.Errorf("%w: %w: %s-%s weight=%d", ErrInvalidEdge, ErrBadWeight, u, v, w)
	}
	if w > MaxTotalWeight-g.total {
		return fmt.Errorf("%w: %w: %s-%s weight=%d exceeds remaining budget %d",
			ErrInvalidEdge, ErrBadWeight, u, v, w, MaxTotalWeight-g.total)
	}
	if id < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidEdge, ErrNegativeEdgeID, id)
	}

	// 3) Uniqueness of the pair and of the identifier
	p := mkPair(u, v)
	if _, ok := g.ids[p]; ok {
		return fmt.Errorf("%w: %w: %s-%s", ErrInvalidEdge, ErrMultiEdgeNotAllowed, u, v)
	}
	if other, ok := g.pairs[id]; ok {
		return fmt.Errorf("%w: %w: %d already names %s-%s", ErrInvalidEdge, ErrDuplicateEdgeID, id, other.lo, other.hi)
	}

	// 4) Link both directions and index the identifier
	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adj[u][v] = w
	g.adj[v][u] = w
	g.ids[p] = id
	g.pairs[id] = p
	g.total += w

	return nil
}

// ensureVertex creates the adjacency bucket for id if missing.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// HasEdge reports whether {u,v} is currently present (not on the removal stack).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of the present edge {u,v}.
func (g *Graph) Weight(u, v string) (int64, bool) {
	w, ok := g.adj[u][v]

	return w, ok
}

// EdgeID returns the identifier of {u,v}. It is defined for removed edges
// too, since identifiers outlive any removal.
func (g *Graph) EdgeID(u, v string) (int64, bool) {
	id, ok := g.ids[mkPair(u, v)]

	return id, ok
}

// Edges returns every present edge, sorted by ID, oriented lo→hi.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.ids))
	for p, id := range g.ids {
		if w, ok := g.adj[p.lo][p.hi]; ok {
			out = append(out, Edge{ID: id, From: p.lo, To: p.hi, Weight: w})
		}
	}
	sortByID(out)

	return out
}

// AllEdges returns present and removed edges, sorted by ID. Removed edges
// report the weight recorded on the removal stack.
// Complexity: O(E log E).
func (g *Graph) AllEdges() []Edge {
	out := g.Edges()
	for _, r := range g.removed {
		p := mkPair(r.From, r.To)
		out = append(out, Edge{ID: r.ID, From: p.lo, To: p.hi, Weight: r.Weight})
	}
	sortByID(out)

	return out
}

// EdgeCount returns the number of present edges.
func (g *Graph) EdgeCount() int {
	return len(g.ids) - len(g.removed)
}

// WeightOf sums the weights of the edges named by ids, whether present or
// removed. Unknown identifiers yield ErrEdgeNotFound.
func (g *Graph) WeightOf(ids []int64) (int64, error) {
	var total int64
	for _, id := range ids {
		w, err := g.weightByID(id)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

// EdgeByID returns the edge named by id, oriented lo→hi.
func (g *Graph) EdgeByID(id int64) (Edge, error) {
	p, ok := g.pairs[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	w, err := g.weightByID(id)
	if err != nil {
		return Edge{}, err
	}

	return Edge{ID: id, From: p.lo, To: p.hi, Weight: w}, nil
}

// weightByID resolves the weight of id from the adjacency or, when the edge
// is checked out, from its removal record.
func (g *Graph) weightByID(id int64) (int64, error) {
	p, ok := g.pairs[id]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	if w, ok := g.adj[p.lo][p.hi]; ok {
		return w, nil
	}
	for i := len(g.removed) - 1; i >= 0; i-- {
		if g.removed[i].ID == id {
			return g.removed[i].Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
}

func sortByID(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
}
