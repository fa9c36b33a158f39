package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-cut/bfs"
	"github.com/katalvlaran/lvlath-cut/core"
)

// mkChain builds A-B-C-D plus the detached pair X-Y.
func mkChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4, 1))
	require.NoError(t, g.AddEdge("B", "C", 1, 2))
	require.NoError(t, g.AddEdge("C", "D", 9, 3))
	require.NoError(t, g.AddEdge("X", "Y", 1, 4))

	return g
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mkChain(t)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthPath(t *testing.T) {
	g := mkChain(t)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	require.Equal(t, 3, res.Depth["D"])
	require.False(t, res.Reached("X"))

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)

	_, err = res.PathTo("Y")
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := mkChain(t)
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return nbr != "C"
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := mkChain(t)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestConnected(t *testing.T) {
	g := mkChain(t)

	ok, err := bfs.Connected(g, "A", "D")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = bfs.Connected(g, "A", "Y")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = bfs.Connected(g, "A", "missing")
	require.NoError(t, err)
	require.False(t, ok, "absent terminal is disconnected")

	_, err = g.RemoveEdge("B", "C")
	require.NoError(t, err)
	ok, err = bfs.Connected(g, "A", "D")
	require.NoError(t, err)
	require.False(t, ok, "removed edges are not traversed")

	_, err = bfs.Connected(nil, "A", "B")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestConnected_Options(t *testing.T) {
	g := mkChain(t)

	ok, err := bfs.Connected(g, "A", "D", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C") && !(curr == "C" && nbr == "B")
	}))
	require.NoError(t, err)
	require.False(t, ok, "a hidden edge is not traversed")
	require.Equal(t, 4, g.EdgeCount(), "filtering leaves the graph intact")

	ok, err = bfs.Connected(g, "A", "D", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, ok, "D is three hops away")

	visits := 0
	ok, err = bfs.Connected(g, "A", "D", bfs.WithOnVisit(func(string, int) error {
		visits++
		return nil
	}))
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, visits, "the caller's visit hook is replaced")
}
