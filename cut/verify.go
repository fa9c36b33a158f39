package cut

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlath-cut/bfs"
	"github.com/katalvlaran/lvlath-cut/core"
)

// Verification reports how a proposed edge set relates to two terminals.
//   - IDs: the proposed identifiers, deduplicated and ascending.
//   - Cost: total weight of IDs.
//   - Disconnects: removing IDs separates the terminals.
//   - Redundant: ids whose restoration alone keeps the terminals apart.
type Verification struct {
	IDs         []int64
	Cost        int64
	Disconnects bool
	Redundant   []int64
}

// Minimal reports whether the set disconnects and every member is needed.
// Minimal is about inclusion, not weight: a minimal set need not be the
// cheapest one.
func (v Verification) Minimal() bool {
	return v.Disconnects && len(v.Redundant) == 0
}

// Verify checks a proposed cut between a and z without mutating g: the
// proposed edges are hidden from a BFS walk instead of being removed. The
// graph must have an empty removal stack.
//
// Steps:
//  1. Resolve every id to its edge (ErrUnknownEdgeID otherwise).
//  2. Hide all of them and test reachability.
//  3. For each id, hide all the others; if a and z stay apart the id is
//     redundant.
//
// Complexity: O(k · (V + E)) for k ids.
func Verify(g *core.Graph, a, z string, ids []int64) (Verification, error) {
	if g == nil {
		return Verification{}, ErrNilGraph
	}
	if a == z {
		return Verification{}, ErrSameTerminal
	}
	if g.Depth() != 0 {
		return Verification{}, ErrPendingRemovals
	}

	set := slices.Clone(ids)
	slices.Sort(set)
	set = slices.Compact(set)

	edges := make([]core.Edge, len(set))
	for i, id := range set {
		e, err := g.EdgeByID(id)
		if err != nil {
			if errors.Is(err, core.ErrEdgeNotFound) {
				return Verification{}, fmt.Errorf("%w: %d", ErrUnknownEdgeID, id)
			}
			return Verification{}, err
		}
		edges[i] = e
	}

	v := Verification{IDs: set}
	for _, e := range edges {
		v.Cost += e.Weight
	}

	apart, err := separated(g, a, z, edges, -1)
	if err != nil {
		return Verification{}, err
	}
	v.Disconnects = apart
	if !apart {
		return v, nil
	}

	for i := range edges {
		apart, err = separated(g, a, z, edges, i)
		if err != nil {
			return Verification{}, err
		}
		if apart {
			v.Redundant = append(v.Redundant, set[i])
		}
	}

	return v, nil
}

// separated hides edges (except index skip) from a BFS walk over g and
// reports whether a and z are disconnected.
func separated(g *core.Graph, a, z string, edges []core.Edge, skip int) (bool, error) {
	hidden := make(map[[2]string]bool, 2*len(edges))
	for i, e := range edges {
		if i == skip {
			continue
		}
		hidden[[2]string{e.From, e.To}] = true
		hidden[[2]string{e.To, e.From}] = true
	}
	ok, err := bfs.Connected(g, a, z, bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !hidden[[2]string{curr, nbr}]
	}))

	return !ok, err
}
