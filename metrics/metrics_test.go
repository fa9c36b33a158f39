package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/cut"
	"github.com/katalvlaran/lvlath-cut/metrics"
)

func mkTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3, 1))
	require.NoError(t, g.AddEdge("A", "Z", 5, 2))
	require.NoError(t, g.AddEdge("B", "Z", 1, 3))

	return g
}

func TestCollector_ObservesSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg, "test")
	g := mkTriangle(t)
	c.ObserveGraph(g)

	res, err := cut.Search(g, cut.WithObserver(c))
	require.NoError(t, err)
	c.ObserveResult(res, err)

	require.Equal(t, float64(res.Stats.Expanded), testutil.ToFloat64(c.Expansions))
	require.Equal(t, float64(res.Stats.Solutions), testutil.ToFloat64(c.Solutions))
	require.Equal(t, float64(res.Stats.Pruned), testutil.ToFloat64(c.Prunes))
	require.Equal(t, float64(res.Stats.MaxDepth), testutil.ToFloat64(c.MaxDepth))
	require.Equal(t, float64(6), testutil.ToFloat64(c.BestCost))
	require.Equal(t, float64(3), testutil.ToFloat64(c.GraphVertices))
	require.Equal(t, float64(3), testutil.ToFloat64(c.GraphEdges))
	require.Equal(t, float64(1), testutil.ToFloat64(c.Searches.WithLabelValues(metrics.StatusOK)))
	require.Equal(t, 1, testutil.CollectAndCount(c.SearchDuration))
}

func TestCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg, "dup")
	require.Panics(t, func() { metrics.NewCollector(reg, "dup") })
}

func TestStatus(t *testing.T) {
	require.Equal(t, metrics.StatusOK, metrics.Status(nil))
	require.Equal(t, metrics.StatusTimeLimit, metrics.Status(cut.ErrTimeLimit))
	require.Equal(t, metrics.StatusTimeLimit, metrics.Status(context.DeadlineExceeded))
	require.Equal(t, metrics.StatusExpansionLimit, metrics.Status(cut.ErrExpansionLimit))
	require.Equal(t, metrics.StatusCanceled, metrics.Status(context.Canceled))
	require.Equal(t, metrics.StatusError, metrics.Status(errors.New("boom")))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg, "cutsearch")
	c.OnExpand(2, 7)
	c.OnSolution([]int64{1}, 7)

	path := filepath.Join(t.TempDir(), "cutsearch.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, "cutsearch_search_expansions_total 1"), text)
	require.Contains(t, text, "cutsearch_search_best_cost 7")
	require.Contains(t, text, "cutsearch_search_max_depth 2")
}
