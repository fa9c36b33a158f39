package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/cut"
	"github.com/katalvlaran/lvlath-cut/edgelist"
	"github.com/katalvlaran/lvlath-cut/metrics"
)

// solveOutput is the JSON shape of a solve run.
type solveOutput struct {
	RunID     string            `json:"run_id"`
	Source    string            `json:"source"`
	Target    string            `json:"target"`
	IDs       []int64           `json:"ids"`
	Answer    string            `json:"answer"`
	Cost      int64             `json:"cost"`
	Found     bool              `json:"found"`
	Complete  bool              `json:"complete"`
	Stats     cut.Stats         `json:"stats"`
	Verified  *cut.Verification `json:"verification,omitempty"`
	ErrorText string            `json:"error,omitempty"`
}

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Find the cheapest cut between the terminals",
		Long: `Find the cheapest set of edges whose removal disconnects the source from
the target. The answer is printed as edge ids in ascending order joined by '-'.
FILE defaults to input.path from the configuration, then stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.DurationVar(&a.timeLimit, "time-limit", 0, "stop after this long and report the best cut so far")
	f.Int64Var(&a.maxExpansions, "max-expansions", 0, "stop after this many search nodes")
	f.BoolVar(&a.eagerPrune, "eager-prune", false, "skip edges that alone reach the best cost")
	f.BoolVar(&a.flowBound, "flow-bound", false, "prune with the max-flow lower bound")
	f.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	f.BoolVar(&a.verify, "verify", false, "check that the answer disconnects the terminals")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	g, err := a.loadGraph(cmd, args)
	if err != nil {
		return err
	}

	opts := a.searchOptions()
	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if a.cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		collector = metrics.NewCollector(reg, a.cfg.Metrics.Namespace)
		collector.ObserveGraph(g)
		opts = append(opts, cut.WithObserver(collector))
	}

	res, searchErr := cut.Search(g, opts...)
	if collector != nil {
		collector.ObserveResult(res, searchErr)
		if path := a.cfg.Metrics.Textfile; path != "" {
			if err = metrics.WriteTextfile(path, reg); err != nil {
				a.log.Warn("metrics textfile not written", "path", path, "error", err)
			}
		}
	}

	logArgs := []any{
		"ids", edgelist.Format(res.IDs),
		"cost", res.Cost,
		"expanded", res.Stats.Expanded,
		"pruned", res.Stats.Pruned,
		"elapsed", res.Stats.Elapsed,
	}
	if searchErr != nil {
		a.log.Warn("search stopped early", append(logArgs, "error", searchErr)...)
	} else {
		a.log.Info("search finished", logArgs...)
	}

	var verification *cut.Verification
	if a.verify && res.Found {
		v, err := cut.Verify(g, a.cfg.Search.Source, a.cfg.Search.Target, res.IDs)
		if err != nil {
			return err
		}
		verification = &v
		if !v.Disconnects {
			return fmt.Errorf("cutsearch: answer %s does not disconnect %s from %s",
				edgelist.Format(res.IDs), a.cfg.Search.Source, a.cfg.Search.Target)
		}
	}

	if a.jsonOut {
		o := solveOutput{
			RunID:    a.runID,
			Source:   a.cfg.Search.Source,
			Target:   a.cfg.Search.Target,
			IDs:      res.IDs,
			Answer:   edgelist.Format(res.IDs),
			Cost:     res.Cost,
			Found:    res.Found,
			Complete: searchErr == nil,
			Stats:    res.Stats,
			Verified: verification,
		}
		if o.IDs == nil {
			o.IDs = []int64{}
		}
		if searchErr != nil {
			o.ErrorText = searchErr.Error()
		}
		if err = printJSON(cmd, o); err != nil {
			return err
		}
	} else if res.Found {
		printf(cmd, "%s\n", edgelist.Format(res.IDs))
	}

	return searchErr
}
