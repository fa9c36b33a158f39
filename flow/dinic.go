package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/lvlath-cut/core"
)

// Dinic computes the same maximum flow as EdmondsKarp using Dinic's
// algorithm (level graph + blocking flows). It shares the error contract
// and lenient handling of absent terminals with EdmondsKarp.
//
// Steps:
//  1. Validate terminals and build the residual network (O(V + E)).
//  2. Repeat until the sink leaves the level graph:
//     a. Check for cancellation.
//     b. BFS to assign levels from the source.
//     c. DFS-based blocking flow along strictly increasing levels,
//     optionally rebuilding levels every LevelRebuildInterval augmentations.
//  3. Derive the source side and cut ids from the residual network.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E) for capacities, levels and iterators.
func Dinic(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (Result, error) {
	ctx, o := resolve(ctx, opts)

	n, ok, err := prepare(ctx, g, source, sink, o)
	if err != nil || !ok {
		return Result{}, err
	}

	var maxFlow int64
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return Result{Value: maxFlow}, err
		}

		level := n.levels(source)
		if _, reached := level[sink]; !reached {
			break
		}

		iter := make(map[string]int, len(n.nbrs))
		for {
			if err = ctx.Err(); err != nil {
				return Result{Value: maxFlow}, err
			}
			pushed := n.dfsPush(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if o.Logger != nil {
				o.Logger.Debug("flow: dinic push", "pushed", pushed, "total", maxFlow)
			}
			if o.LevelRebuildInterval > 0 && augmentCount%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return n.result(g, source, maxFlow), nil
}

// levels returns the BFS distance from source over positive residual capacity.
// Unreached vertices are absent from the map.
func (n *network) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.nbrs[u] {
			if _, seen := level[v]; seen || n.capacity[u][v] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dfsPush pushes flow along the level graph, advancing iter[u] past dead
// ends, and returns the amount actually sent.
func (n *network) dfsPush(level, iter map[string]int, u, sink string, available int64) int64 {
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(n.nbrs[u]); i++ {
		v := n.nbrs[u][i]
		c := n.capacity[u][v]
		lv, ok := level[v]
		if c > 0 && ok && lv == level[u]+1 {
			if pushed := n.dfsPush(level, iter, v, sink, min(available, c)); pushed > 0 {
				n.push(u, v, pushed)
				iter[u] = i

				return pushed
			}
		}
		iter[u] = i + 1
	}

	return 0
}
