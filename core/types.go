// Package core defines the Graph and Edge types, the removal record kept on
// the undo stack, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidEdge         - umbrella kind for every rejected AddEdge call.
//	ErrEmptyVertexID       - an endpoint is the empty string.
//	ErrLoopNotAllowed      - u == v.
//	ErrBadWeight           - weight <= 0, or the total weight would exceed MaxTotalWeight.
//	ErrNegativeEdgeID      - the identifier is negative.
//	ErrMultiEdgeNotAllowed - the unordered pair {u,v} already has an edge.
//	ErrDuplicateEdgeID     - the identifier is already bound to another pair.
//	ErrRemovalInProgress   - AddEdge while the removal stack is non-empty.
//	ErrEdgeNotFound        - RemoveEdge on an absent (or already removed) edge.
//	ErrEmptyRemovalStack   - RestoreEdge with nothing to restore.
package core

import (
	"errors"
	"math"
)

// MaxTotalWeight bounds the sum of all edge weights ever added to a Graph.
// Any cost, path length or flow value is a partial sum of those weights, so
// it stays strictly below math.MaxInt64, which callers use as infinity.
const MaxTotalWeight int64 = math.MaxInt64 - 1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge is wrapped by every AddEdge rejection so callers can test
	// for the whole class with errors.Is and still inspect the precise cause.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrEmptyVertexID indicates that an endpoint ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop (u == v).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight or one that would
	// push the total weight past MaxTotalWeight.
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrNegativeEdgeID indicates a negative identifier. Identifiers are
	// rendered hyphen-joined, where a minus sign cannot be told apart.
	ErrNegativeEdgeID = errors.New("core: edge identifier must be non-negative")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates that the identifier already names another edge.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge identifier")

	// ErrRemovalInProgress indicates an attempt to grow the graph while edges
	// are checked out on the removal stack.
	ErrRemovalInProgress = errors.New("core: removal stack is not empty")

	// ErrEdgeNotFound indicates an operation referenced an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyRemovalStack indicates RestoreEdge was called with no pending
	// removal, i.e. the LIFO discipline was broken by the caller.
	ErrEmptyRemovalStack = errors.New("core: removal stack is empty")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To carry the orientation in which the edge was requested or
// traversed; the edge itself has no direction.
type Edge struct {
	// ID is the stable external identifier used for reporting.
	ID int64

	// From is one endpoint (the tail when the edge appears on a path).
	From string

	// To is the other endpoint (the head when the edge appears on a path).
	To string

	// Weight is the strictly positive removal cost.
	Weight int64
}

// pair is an unordered vertex pair, normalised so that lo <= hi.
type pair struct {
	lo, hi string
}

// mkPair normalises (u,v) into its unordered key.
func mkPair(u, v string) pair {
	if v < u {
		u, v = v, u
	}

	return pair{lo: u, hi: v}
}

// Graph is the weighted undirected graph with a removal stack.
//
// adj[u][v] == adj[v][u] == weight for every present edge. ids maps every
// edge ever added (present or removed) to its identifier; pairs is the
// reverse index. removed is the undo log, most recent last, and cost is the
// sum of the weights it holds. total is the sum of every edge weight, present
// or removed, and never exceeds MaxTotalWeight.
type Graph struct {
	adj     map[string]map[string]int64
	ids     map[pair]int64
	pairs   map[int64]pair
	removed []Edge
	cost    int64
	total   int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adj:   make(map[string]map[string]int64),
		ids:   make(map[pair]int64),
		pairs: make(map[int64]pair),
	}
}
