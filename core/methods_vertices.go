// File: methods_vertices.go
// Role: Vertex queries: HasVertex/Vertices/VertexCount/NeighborIDs/Neighbors.
// Determinism:
//   - Vertices() and NeighborIDs() return IDs sorted lexicographically ascending.
//   - Neighbors() is ordered by neighbor ID; every edge is oriented id→neighbor.

package core

import "sort"

// HasVertex reports whether id appears as an endpoint of any edge ever added.
// A vertex whose edges are all on the removal stack is still present.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// NeighborIDs returns the IDs adjacent to id through present edges, sorted.
// Unknown vertices yield an empty slice.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) []string {
	nbrs := g.adj[id]
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the present edges incident to id, oriented id→neighbor
// and ordered by neighbor ID.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []Edge {
	ids := g.NeighborIDs(id)
	out := make([]Edge, 0, len(ids))
	for _, v := range ids {
		out = append(out, Edge{
			ID:     g.ids[mkPair(id, v)],
			From:   id,
			To:     v,
			Weight: g.adj[id][v],
		})
	}

	return out
}

// Degree returns the number of present edges incident to id.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}
