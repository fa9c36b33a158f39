// Package metrics exposes cut-search progress as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/cut"
)

// Search outcome labels.
const (
	StatusOK             = "ok"
	StatusTimeLimit      = "time_limit"
	StatusExpansionLimit = "expansion_limit"
	StatusCanceled       = "canceled"
	StatusError          = "error"
)

// Collector counts search events. It implements cut.Observer and is safe
// to share between concurrent searches.
type Collector struct {
	Expansions     prometheus.Counter
	Solutions      prometheus.Counter
	Prunes         prometheus.Counter
	MaxDepth       prometheus.Gauge
	BestCost       prometheus.Gauge
	SearchDuration prometheus.Histogram
	Searches       *prometheus.CounterVec
	GraphVertices  prometheus.Gauge
	GraphEdges     prometheus.Gauge

	maxDepth atomic.Int64
}

var _ cut.Observer = (*Collector)(nil)

// NewCollector registers the search metrics on reg under namespace.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Expansions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_expansions_total",
			Help:      "Total number of search nodes expanded",
		}),
		Solutions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_solutions_total",
			Help:      "Total number of improving cuts found",
		}),
		Prunes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_prunes_total",
			Help:      "Total number of branches cut off by the incumbent",
		}),
		MaxDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_max_depth",
			Help:      "Deepest removal stack reached",
		}),
		BestCost: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_best_cost",
			Help:      "Cost of the current best cut",
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of cut searches",
			Buckets:   []float64{.0001, .001, .01, .1, .5, 1, 5, 30, 120},
		}),
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of searches by outcome",
		}, []string{"status"}),
		GraphVertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertices in the searched graph",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges in the searched graph",
		}),
	}
}

// OnExpand implements cut.Observer.
func (c *Collector) OnExpand(depth int, _ int64) {
	c.Expansions.Inc()
	d := int64(depth)
	for {
		cur := c.maxDepth.Load()
		if d <= cur {
			return
		}
		if c.maxDepth.CompareAndSwap(cur, d) {
			c.MaxDepth.Set(float64(d))
			return
		}
	}
}

// OnSolution implements cut.Observer.
func (c *Collector) OnSolution(_ []int64, cost int64) {
	c.Solutions.Inc()
	c.BestCost.Set(float64(cost))
}

// OnPrune implements cut.Observer.
func (c *Collector) OnPrune(int, int64) {
	c.Prunes.Inc()
}

// ObserveGraph records the size of the graph about to be searched.
func (c *Collector) ObserveGraph(g *core.Graph) {
	c.GraphVertices.Set(float64(g.VertexCount()))
	c.GraphEdges.Set(float64(g.EdgeCount()))
}

// ObserveResult records the outcome of one search.
func (c *Collector) ObserveResult(res cut.Result, err error) {
	c.SearchDuration.Observe(res.Stats.Elapsed.Seconds())
	c.Searches.WithLabelValues(Status(err)).Inc()
	if res.Found {
		c.BestCost.Set(float64(res.Cost))
	}
}

// Status maps a Search error to an outcome label.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, cut.ErrTimeLimit), errors.Is(err, context.DeadlineExceeded):
		return StatusTimeLimit
	case errors.Is(err, cut.ErrExpansionLimit):
		return StatusExpansionLimit
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	default:
		return StatusError
	}
}

// WriteTextfile writes everything gathered by g to path in the
// node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
