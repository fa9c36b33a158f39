package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/edgelist"
	"github.com/katalvlaran/lvlath-cut/flow"
)

func newBoundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bound [FILE]",
		Short: "Print the max-flow between the terminals and a matching minimum cut",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runBound,
	}
}

func (a *app) runBound(cmd *cobra.Command, args []string) error {
	g, err := a.loadGraph(cmd, args)
	if err != nil {
		return err
	}
	res, err := flow.Dinic(cmd.Context(), g, a.cfg.Search.Source, a.cfg.Search.Target,
		&flow.FlowOptions{Logger: a.log})
	if err != nil {
		return err
	}

	if a.jsonOut {
		return printJSON(cmd, res)
	}
	printf(cmd, "max-flow %d, cut %s\n", res.Value, edgelist.Format(res.CutIDs))

	return nil
}
