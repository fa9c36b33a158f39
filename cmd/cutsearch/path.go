package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-cut/dijkstra"
	"github.com/katalvlaran/lvlath-cut/edgelist"
)

type pathOutput struct {
	Vertices []string `json:"vertices"`
	IDs      []int64  `json:"ids"`
	Weight   int64    `json:"weight"`
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path [FILE]",
		Short: "Print the shortest path between the terminals",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runPath,
	}
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	g, err := a.loadGraph(cmd, args)
	if err != nil {
		return err
	}
	src, dst := a.cfg.Search.Source, a.cfg.Search.Target
	path, err := dijkstra.ShortestPath(g, src, dst)
	if err != nil {
		return err
	}

	o := pathOutput{Vertices: []string{}, IDs: []int64{}, Weight: dijkstra.PathWeight(path)}
	if len(path) > 0 {
		o.Vertices = append(o.Vertices, path[0].From)
	}
	for _, e := range path {
		o.Vertices = append(o.Vertices, e.To)
		o.IDs = append(o.IDs, e.ID)
	}
	a.log.Debug("shortest path", "hops", len(path), "weight", o.Weight)

	if a.jsonOut {
		return printJSON(cmd, o)
	}
	if len(path) == 0 {
		printf(cmd, "no path from %s to %s\n", src, dst)
		return nil
	}
	printf(cmd, "%s\nweight %d, edges %s\n", strings.Join(o.Vertices, " -> "), o.Weight, edgelist.Format(o.IDs))

	return nil
}
