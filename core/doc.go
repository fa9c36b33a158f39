// Package core provides the weighted, undirected Graph that every search in
// this module runs on, together with a transactional edge-removal stack.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only: (u,v) and (v,u) denote the same edge and always
//     report the same weight and identifier.
//   - Strictly positive int64 weights whose total stays at or below
//     MaxTotalWeight, so no cost or distance can overflow.
//   - Caller-supplied, stable, non-negative int64 edge identifiers used for
//     reporting.
//   - No self-loops and no parallel edges.
//   - Vertices exist implicitly as adjacency keys; AddEdge creates them.
//
// Removal stack:
//
// During a search the graph is mutated only through the RemoveEdge /
// RestoreEdge pair. RemoveEdge deletes an edge from both adjacency
// directions, pushes a reversal record and adds the weight to the running
// cost. RestoreEdge pops the most recent record and reinserts the edge with
// its original weight. Callers restore in strict LIFO order; an empty stack
// is reported as ErrEmptyRemovalStack and is never silently ignored.
//
//	cost₀ := g.Cost()
//	g.RemoveEdge("A", "B")   // cost₀ + w(A,B)
//	g.RemoveEdge("B", "Z")   // cost₀ + w(A,B) + w(B,Z)
//	g.RestoreEdge()          // cost₀ + w(A,B)
//	g.RestoreEdge()          // cost₀, adjacency identical to the start
//
// Invariants:
//
//   - adjacency is symmetric outside of a RemoveEdge/RestoreEdge call;
//   - Cost() equals the sum of the weights on the removal stack;
//   - a restored edge carries its original weight and identifier;
//   - identifiers are immutable and never rebound to another vertex pair.
//
// Determinism:
//
//	Vertices(), NeighborIDs(), Neighbors() return results sorted by vertex ID;
//	Edges() and RemovedEdgeIDs() are sorted by edge identifier.
//
// Concurrency:
//
//	A Graph is owned by exactly one search at a time and is not safe for
//	concurrent use. Every recursive frame of a search depends on the exact
//	adjacency state left by its caller, so sharing a Graph between goroutines
//	is a logic error even under external locking. Use Clone to hand an
//	independent copy to another goroutine.
//
// Complexity:
//
//	AddEdge, RemoveEdge, RestoreEdge, HasEdge, Weight, EdgeID: O(1) amortized.
//	Vertices: O(V log V). NeighborIDs/Neighbors: O(d log d). Edges: O(E log E).
package core
