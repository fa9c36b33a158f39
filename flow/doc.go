// Package flow computes maximum flows over the present edges of an
// undirected *core.Graph. In this module it serves two purposes: an
// admissible lower bound for the branch-and-bound cut search, and an
// independent oracle for the weight of a minimum terminal-separating cut.
//
// The algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V + E) for residual capacities and BFS queues.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general; much faster on sparse networks.
//
//   - Memory: O(V + E) for levels, iterators and recursion state.
//
// # Capacities
//
// Every present undirected edge {u,v} of weight w becomes two residual
// arcs u→v and v→u, each of capacity w. Edges on the graph's removal stack
// contribute nothing, so calling a flow routine mid-search measures the
// residual graph the search is currently looking at.
//
// # API
//
//	func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts *FlowOptions) (Result, error)
//	func Dinic(ctx context.Context, g *core.Graph, source, sink string, opts *FlowOptions) (Result, error)
//
// Result carries the flow value, the source side of the final residual
// network and the ids of the edges crossing it. By max-flow/min-cut
// duality those edges form a minimum cut whose weight equals Value.
//
// # Errors
//
//	ErrNilGraph       - if g is nil.
//	ErrSameTerminal   - if source == sink.
//	ErrSourceNotFound - strict mode only; otherwise the flow is 0.
//	ErrSinkNotFound   - strict mode only; otherwise the flow is 0.
//	context.Canceled / context.DeadlineExceeded - if ctx is done.
package flow
