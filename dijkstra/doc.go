// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// present edges of a core.Graph, plus the ShortestPath helper that the cut
// search calls at every node of its recursion.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source to all
//     reachable vertices in O((V + E) log V) time with a min-heap.
//   - ShortestPath stops once the target is settled and returns the path as
//     an ordered slice of core.Edge (source → target), each carrying its
//     stable identifier and weight.
//   - Edges currently on the graph's removal stack are invisible, so the
//     same graph can be queried repeatedly while a search removes and
//     restores edges.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]core.Edge, error)
//	func PathWeight(path []core.Edge) int64
//
// Options:
//
//	Source(string), Target(string), WithReturnPath(),
//	WithMaxDistance(int64), WithInfEdgeThreshold(int64)
//
// Determinism:
//
//	Neighbours are relaxed in ascending ID order and equal tentative
//	distances pop in discovery order, so repeated queries on the same graph
//	state return the same path.
//
// Thread safety:
//
//	Not safe if the same *core.Graph is modified concurrently.
package dijkstra
