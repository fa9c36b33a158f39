// File: methods_removal.go
// Role: Transactional edge removal: RemoveEdge/RestoreEdge/RestoreAll and the
//       read-outs of the removal stack (Cost/Depth/Removed/RemovedEdgeIDs).
// Invariants:
//   - Cost() == Σ weight over Removed().
//   - RestoreEdge is the exact inverse of the most recent RemoveEdge.

package core

import (
	"fmt"
	"sort"
)

// RemoveEdge checks the present edge {u,v} out of the graph.
//
// Steps:
//  1. Look up the weight; absent edges yield ErrEdgeNotFound.
//  2. Delete both adjacency directions (the vertex buckets stay).
//  3. Push the reversal record (u, v, w, id) and add w to the cost.
//
// Returns the new accumulated cost.
// Complexity: O(1) amortized.
func (g *Graph) RemoveEdge(u, v string) (int64, error) {
	w, ok := g.adj[u][v]
	if !ok {
		return g.cost, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.removed = append(g.removed, Edge{ID: g.ids[mkPair(u, v)], From: u, To: v, Weight: w})
	g.cost += w

	return g.cost, nil
}

// RestoreEdge pops the most recent removal and reinserts it symmetrically
// with its original weight. It returns the new accumulated cost, or
// ErrEmptyRemovalStack when there is nothing to restore.
// Complexity: O(1).
func (g *Graph) RestoreEdge() (int64, error) {
	n := len(g.removed)
	if n == 0 {
		return g.cost, ErrEmptyRemovalStack
	}

	r := g.removed[n-1]
	g.removed = g.removed[:n-1]
	g.adj[r.From][r.To] = r.Weight
	g.adj[r.To][r.From] = r.Weight
	g.cost -= r.Weight

	return g.cost, nil
}

// RestoreAll unwinds the whole removal stack in LIFO order and returns the
// resulting cost (always 0).
func (g *Graph) RestoreAll() (int64, error) {
	for len(g.removed) > 0 {
		if _, err := g.RestoreEdge(); err != nil {
			return g.cost, err
		}
	}

	return g.cost, nil
}

// Cost returns the accumulated cost: the sum of the weights of the edges
// currently on the removal stack.
func (g *Graph) Cost() int64 { return g.cost }

// Depth returns the number of edges currently on the removal stack.
func (g *Graph) Depth() int { return len(g.removed) }

// Removed returns a copy of the removal stack, oldest first.
func (g *Graph) Removed() []Edge {
	out := make([]Edge, len(g.removed))
	copy(out, g.removed)

	return out
}

// RemovedEdgeIDs returns the identifiers on the removal stack in ascending
// order. This is how a search reads out a candidate cut.
func (g *Graph) RemovedEdgeIDs() []int64 {
	out := make([]int64, len(g.removed))
	for i, r := range g.removed {
		out[i] = r.ID
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
