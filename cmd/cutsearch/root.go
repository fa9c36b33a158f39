package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/config"
	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/cut"
	"github.com/katalvlaran/lvlath-cut/edgelist"
	"github.com/katalvlaran/lvlath-cut/logger"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// flags
	configPath    string
	logLevel      string
	source        string
	target        string
	jsonOut       bool
	timeLimit     time.Duration
	maxExpansions int64
	eagerPrune    bool
	flowBound     bool
	metricsFile   string
	verify        bool

	cfg   *config.Config
	runID string
	log   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "cutsearch",
		Short: "Minimum-cost terminal disconnection on weighted graphs",
		Long: `cutsearch reads an edge list of lines "index: u-v: weight" and finds
the cheapest set of edges whose removal disconnects the source from the
target (by default A and Z).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: cutsearch.yaml or $CUTSEARCH_CONFIG)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.source, "source", "", "source terminal (default A)")
	pf.StringVar(&a.target, "target", "", "target terminal (default Z)")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newSolveCmd(a),
		newPathCmd(a),
		newVerifyCmd(a),
		newBoundCmd(a),
		newGenCmd(a),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configPath != "" {
		opts = append(opts, config.WithConfigFile(a.configPath))
	}
	loader := config.NewLoader(opts...)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("source") {
		cfg.Search.Source = a.source
	}
	if flags.Changed("target") {
		cfg.Search.Target = a.target
	}
	if flags.Changed("time-limit") {
		cfg.Search.TimeLimit = a.timeLimit
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = a.maxExpansions
	}
	if flags.Changed("eager-prune") {
		cfg.Search.EagerPrune = a.eagerPrune
	}
	if flags.Changed("flow-bound") {
		cfg.Search.FlowBound = a.flowBound
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = a.metricsFile
		cfg.Metrics.Enabled = a.metricsFile != ""
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	a.runID = uuid.NewString()
	a.log = logger.WithRunID(a.runID).With("command", cmd.Name())
	if src := loader.Source(); src != "" {
		a.log.Debug("configuration loaded", "file", src)
	}

	return nil
}

// loadGraph reads the edge list named by args[0], the configured input
// path, or stdin.
func (a *app) loadGraph(cmd *cobra.Command, args []string) (*core.Graph, error) {
	path := a.cfg.Input.Path
	if len(args) > 0 {
		path = args[0]
	}

	var (
		recs []edgelist.Record
		err  error
	)
	if path == "" || path == "-" {
		recs, err = edgelist.Parse(cmd.InOrStdin())
		path = "stdin"
	} else {
		recs, err = edgelist.ParseFile(path)
	}
	if err != nil {
		return nil, err
	}
	g, err := edgelist.Build(recs)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded", "input", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// searchOptions maps the search section onto cut options.
func (a *app) searchOptions() []cut.Option {
	s := a.cfg.Search
	opts := []cut.Option{
		cut.WithTerminals(s.Source, s.Target),
		cut.WithTimeLimit(s.TimeLimit),
		cut.WithMaxExpansions(s.MaxExpansions),
		cut.WithLogger(a.log),
	}
	if s.EagerPrune {
		opts = append(opts, cut.WithEagerPrune())
	}
	if s.FlowBound {
		opts = append(opts, cut.WithFlowBound())
	}

	return opts
}

// printf writes to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
