// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, distances, path reconstruction, early
// stopping, option thresholds, and the interaction with removed edges.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/dijkstra"
)

// mkGraph builds a graph from (u, v, w) triples; ids are assigned 1..n.
func mkGraph(t *testing.T, edges ...[3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, e := range edges {
		if err := g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int)), int64(i+1)); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	if _, _, err := dijkstra.Dijkstra(g); err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X")); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(nil, "A", "Z"); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph from ShortestPath, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := mkGraph(t, [3]interface{}{"A", "B", 1})
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X")); err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := mkGraph(t, [3]interface{}{"A", "B", 1})
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1)); !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(0)); !errors.Is(err, dijkstra.ErrBadInfThreshold) {
		t.Fatalf("Expected ErrBadInfThreshold, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, "A", ""); err != dijkstra.ErrEmptyTarget {
		t.Fatalf("Expected ErrEmptyTarget, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_TriangleWithPath(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "C", 2},
		[3]interface{}{"A", "C", 5},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}
	if prev["B"] != "A" || prev["C"] != "B" || prev["A"] != "" {
		t.Errorf("Unexpected predecessors: %v", prev)
	}
}

func TestDijkstra_NoPrevWithoutReturnPath(t *testing.T) {
	g := mkGraph(t, [3]interface{}{"A", "B", 1})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_UnreachableIsInfinite(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"C", "D", 1},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != math.MaxInt64 || dist["D"] != math.MaxInt64 {
		t.Errorf("expected +inf for other component, got %v", dist)
	}
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 2},
		[3]interface{}{"B", "C", 2},
		[3]interface{}{"A", "C", 100},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 2 || dist["C"] != math.MaxInt64 {
		t.Errorf("MaxDistance not honoured: %v", dist)
	}

	// With every edge into C at or above the threshold, C becomes unreachable.
	path, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Errorf("weights ≥ threshold must be walls, got %v", path)
	}
	path, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(50))
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 || dijkstra.PathWeight(path) != 4 {
		t.Errorf("expected A-B-C under threshold 50, got %v", path)
	}
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath_TriangleAvoidsDirectEdge(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "Z", 1},
		[3]interface{}{"A", "Z", 5},
	)
	path, err := dijkstra.ShortestPath(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Edge{
		{ID: 1, From: "A", To: "B", Weight: 1},
		{ID: 2, From: "B", To: "Z", Weight: 1},
	}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v; want %v", i, path[i], want[i])
		}
	}
	if w := dijkstra.PathWeight(path); w != 2 {
		t.Errorf("PathWeight = %d; want 2", w)
	}
}

func TestShortestPath_SeesRemovals(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "Z", 1},
		[3]interface{}{"A", "Z", 5},
	)
	if _, err := g.RemoveEdge("A", "B"); err != nil {
		t.Fatal(err)
	}
	path, err := dijkstra.ShortestPath(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0].ID != 3 {
		t.Fatalf("expected direct edge after removal, got %v", path)
	}
	if g.Depth() != 1 || g.Cost() != 1 {
		t.Errorf("ShortestPath must not mutate the graph")
	}
}

func TestShortestPath_NoPathCases(t *testing.T) {
	g := mkGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"Y", "Z", 1},
	)
	cases := []struct{ src, tgt string }{
		{"A", "Z"},       // different components
		{"A", "missing"}, // absent target
		{"missing", "Z"}, // absent source
		{"A", "A"},       // degenerate
	}
	for _, c := range cases {
		path, err := dijkstra.ShortestPath(g, c.src, c.tgt)
		if err != nil {
			t.Fatalf("%s→%s: unexpected error %v", c.src, c.tgt, err)
		}
		if len(path) != 0 {
			t.Errorf("%s→%s: expected empty path, got %v", c.src, c.tgt, path)
		}
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	// Two equal-weight routes A-B-Z and A-C-Z; the B route is discovered first.
	g := mkGraph(t,
		[3]interface{}{"A", "C", 1},
		[3]interface{}{"C", "Z", 1},
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "Z", 1},
	)
	first, err := dijkstra.ShortestPath(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 || first[0].To != "B" {
		t.Fatalf("expected tie broken towards B, got %v", first)
	}
	for i := 0; i < 20; i++ {
		again, _ := dijkstra.ShortestPath(g, "A", "Z")
		if again[0] != first[0] || again[1] != first[1] {
			t.Fatalf("non-deterministic path: %v vs %v", again, first)
		}
	}
}

func TestShortestPath_WeightAtTheLimit(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "Z", core.MaxTotalWeight, 1); err != nil {
		t.Fatal(err)
	}
	path, err := dijkstra.ShortestPath(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || dijkstra.PathWeight(path) != core.MaxTotalWeight {
		t.Fatalf("expected the single heaviest edge, got %v", path)
	}
}
