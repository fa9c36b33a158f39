package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/lvlath-cut/core"
)

// network is the residual view of an undirected core.Graph: every present
// edge {u,v} of weight w yields capacity w in both directions.
type network struct {
	capacity map[string]map[string]int64
	nbrs     map[string][]string
}

// prepare validates the terminals and builds the residual network.
// ok is false when a terminal is absent in lenient mode; the flow is then 0.
//
// Steps:
//  1. Reject nil graphs and coinciding terminals.
//  2. Resolve absent terminals per opts.Strict.
//  3. Build capacities from the present edges (O(V + E)).
func prepare(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (n *network, ok bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if source == sink {
		return nil, false, ErrSameTerminal
	}
	if !g.HasVertex(source) {
		if opts.Strict {
			return nil, false, ErrSourceNotFound
		}
		return nil, false, nil
	}
	if !g.HasVertex(sink) {
		if opts.Strict {
			return nil, false, ErrSinkNotFound
		}
		return nil, false, nil
	}
	if err = ctx.Err(); err != nil {
		return nil, false, err
	}

	return buildNetwork(g), true, nil
}

// buildNetwork copies the present adjacency of g into capacity maps.
// Neighbor lists are sorted so augmenting paths are chosen deterministically.
func buildNetwork(g *core.Graph) *network {
	vertices := g.Vertices()
	n := &network{
		capacity: make(map[string]map[string]int64, len(vertices)),
		nbrs:     make(map[string][]string, len(vertices)),
	}
	for _, u := range vertices {
		n.capacity[u] = make(map[string]int64)
		n.nbrs[u] = g.NeighborIDs(u)
	}
	for _, e := range g.Edges() {
		n.capacity[e.From][e.To] = e.Weight
		n.capacity[e.To][e.From] = e.Weight
	}

	return n
}

// push moves f units along u→v in the residual network.
func (n *network) push(u, v string, f int64) {
	n.capacity[u][v] -= f
	n.capacity[v][u] += f
}

// result assembles a Result from the saturated network: the source side is
// everything reachable over positive residual capacity.
func (n *network) result(g *core.Graph, source string, value int64) Result {
	side := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.nbrs[u] {
			if !side[v] && n.capacity[u][v] > 0 {
				side[v] = true
				queue = append(queue, v)
			}
		}
	}
	sort.Strings(queue)

	var cut []int64
	for _, e := range g.Edges() {
		if side[e.From] != side[e.To] {
			cut = append(cut, e.ID)
		}
	}

	return Result{Value: value, SourceSide: queue, CutIDs: cut}
}
