package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/cut"
	"github.com/katalvlaran/lvlath-cut/edgelist"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE IDS",
		Short: "Check whether a set of edge ids disconnects the terminals",
		Long: `Check a proposed cut, given as ids joined by '-' or ','. The command
fails when the ids do not disconnect the terminals and reports ids that
could be restored without reconnecting them.`,
		Args: cobra.ExactArgs(2),
		RunE: a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	g, err := a.loadGraph(cmd, args[:1])
	if err != nil {
		return err
	}
	ids, err := edgelist.ParseIDs(args[1])
	if err != nil {
		return err
	}
	src, dst := a.cfg.Search.Source, a.cfg.Search.Target
	v, err := cut.Verify(g, src, dst, ids)
	if err != nil {
		return err
	}
	a.log.Info("verification", "ids", edgelist.Format(v.IDs), "disconnects", v.Disconnects, "redundant", v.Redundant)

	if a.jsonOut {
		if err = printJSON(cmd, v); err != nil {
			return err
		}
	} else {
		printf(cmd, "ids %s cost %d disconnects %t minimal %t\n",
			edgelist.Format(v.IDs), v.Cost, v.Disconnects, v.Minimal())
		if len(v.Redundant) > 0 {
			printf(cmd, "redundant %s\n", edgelist.Format(v.Redundant))
		}
	}
	if !v.Disconnects {
		return fmt.Errorf("cutsearch: %s does not disconnect %s from %s", edgelist.Format(v.IDs), src, dst)
	}

	return nil
}
