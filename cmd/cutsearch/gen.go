package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/builder"
	"github.com/katalvlaran/lvlath-cut/edgelist"
)

// genFlags holds the knobs of the gen subcommand.
type genFlags struct {
	size      int
	rows      int
	cols      int
	prob      float64
	seed      int64
	minWeight int64
	maxWeight int64
}

func newGenCmd(a *app) *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen ladder|grid|random",
		Short: "Print a generated edge list between the terminals",
		Long: `Generate a test graph and print it as an edge list that solve, path,
verify and bound accept. Weights are drawn uniformly from
[--min-weight, --max-weight] with the given seed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ladder", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd, args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.size, "size", 4, "ladder rungs or random vertex count")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.prob, "p", 0.5, "random edge probability")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Int64Var(&f.minWeight, "min-weight", 1, "smallest edge weight")
	fl.Int64Var(&f.maxWeight, "max-weight", 9, "largest edge weight")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, topology string, f *genFlags) error {
	var con builder.Constructor
	switch topology {
	case "ladder":
		con = builder.Ladder(f.size)
	case "grid":
		con = builder.Grid(f.rows, f.cols)
	case "random":
		con = builder.RandomSparse(f.size, f.prob)
	default:
		return fmt.Errorf("gen: unknown topology %q (want ladder, grid or random)", topology)
	}
	if f.minWeight < 1 || f.maxWeight < f.minWeight {
		return fmt.Errorf("gen: need 1 <= min-weight <= max-weight, got %d and %d", f.minWeight, f.maxWeight)
	}
	s := a.cfg.Search
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithTerminals(s.Source, s.Target),
		builder.WithWeightFn(builder.UniformWeightFn(f.minWeight, f.maxWeight)),
	}, con)
	if err != nil {
		return err
	}
	a.log.Debug("graph generated", "topology", topology, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return edgelist.Write(cmd.OutOrStdout(), g)
}
