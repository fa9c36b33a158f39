// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of the present graph: vertices, present edges
// and their identifiers. Edges on the removal stack are absent from the
// clone, whose own stack starts empty with cost 0. Identifiers of removed
// edges stay reserved in the clone so they can never be rebound.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for u, nbrs := range g.adj {
		clone.adj[u] = make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			clone.adj[u][v] = w
			if u < v {
				clone.total += w
			}
		}
	}
	for p, id := range g.ids {
		if _, ok := g.adj[p.lo][p.hi]; ok {
			clone.ids[p] = id
		}
		clone.pairs[id] = p
	}

	return clone
}
