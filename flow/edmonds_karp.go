package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/lvlath-cut/core"
)

// EdmondsKarp computes the maximum flow from source to sink over the
// present edges of g using the Edmonds–Karp algorithm (BFS for shortest
// augmenting paths). Each undirected edge carries its weight as capacity
// in both directions. Edges on the removal stack carry nothing.
//
// It returns:
//   - Result: flow value, residual source side and the minimum cut ids
//   - err: ErrNilGraph, ErrSameTerminal, ErrSourceNotFound/ErrSinkNotFound
//     (strict mode only), or the context error on cancellation.
//
// With lenient options an absent terminal yields a zero Result.
// The graph itself is never modified.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (Result, error) {
	ctx, o := resolve(ctx, opts)

	// 1) Validate terminals and build the residual network
	n, ok, err := prepare(ctx, g, source, sink, o)
	if err != nil || !ok {
		return Result{}, err
	}

	// 2) Main loop: find BFS augmenting paths until none remain
	var maxFlow int64
	for {
		if err = ctx.Err(); err != nil {
			return Result{Value: maxFlow}, err
		}
		path, bottle := n.bfsAugmentingPath(source, sink)
		if len(path) == 0 {
			break
		}
		if o.Logger != nil {
			o.Logger.Debug("flow: augmenting path", "path", path, "flow", bottle)
		}
		maxFlow += bottle

		// 3) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			n.push(path[i], path[i+1], bottle)
		}
	}

	return n.result(g, source, maxFlow), nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path from source to
// sink with positive residual capacity and returns it with its bottleneck.
// Returns nil if no path exists.
func (n *network) bfsAugmentingPath(source, sink string) ([]string, int64) {
	parent := make(map[string]string, len(n.nbrs))
	bottle := map[string]int64{source: math.MaxInt64}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.nbrs[u] {
			c := n.capacity[u][v]
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = min(bottle[u], c)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
					path[l], path[r] = path[r], path[l]
				}

				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
