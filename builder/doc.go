// Package builder generates deterministic test and benchmark graphs for
// terminal-disconnection problems.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph and runs constructors in order.
//     – Constructor:       a topology closure receiving the resolved config.
//   - Topologies (every one joins the configured source and target):
//     – Ladder(n):         two rails of n rungs between source and target.
//     – Grid(rows, cols):  an orthogonal grid; the source feeds the first
//     column and the last column drains into the target.
//     – RandomSparse(n,p): Erdős–Rényi-like over n vertices, the two
//     terminals included.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Edge identifiers are assigned 1, 2, 3, … in emission order and keep
//     counting across constructors of one BuildGraph call.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves only return sentinel errors.
package builder
