// Package lvlathcut finds the cheapest set of edges whose removal
// disconnects two terminal vertices of an undirected weighted graph.
//
// What is inside?
//
//	• Core primitives: a weighted graph with a LIFO removal stack
//	• Traversal: BFS over present edges (connectivity checks)
//	• Shortest paths: Dijkstra with deterministic tie-breaking
//	• Flow algorithms: Edmonds–Karp and Dinic (lower bounds, certificates)
//	• Cut search: branch-and-bound over the current shortest path
//	• Edge lists: the "id:U-V:weight" text format
//
// Everything is organized under these subpackages:
//
//	core/      — Graph, Edge, removal stack and cumulative cost
//	bfs/       — breadth-first traversal and Connected
//	dijkstra/  — single-source distances and ShortestPath
//	flow/      — max-flow and the min cut read off the residual network
//	cut/       — Search, Verify, observers and search budgets
//	edgelist/  — parsing, writing and formatting edge lists
//	builder/   — seeded ladder, grid and random fixtures
//	config/    — koanf-backed configuration for the CLI
//	logger/    — slog setup with optional lumberjack rotation
//	metrics/   — Prometheus collectors fed by a search observer
//	cmd/       — the cutsearch command
//	examples/  — a runnable rack-isolation scenario
//
// Quick ASCII example:
//
//	    A───B
//	     \  │
//	      \ │
//	        Z
//
// With weights A-B:3, A-Z:5, B-Z:1 the cheapest cut is {A-Z, B-Z} at 6.
//
//	go install github.com/katalvlaran/lvlath-cut/cmd/cutsearch@latest
package lvlathcut
