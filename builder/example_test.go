package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-cut/builder"
	"github.com/katalvlaran/lvlath-cut/cut"
)

// ExampleLadder builds a two-rung ladder with unit weights. Every rung
// level offers two parallel rails, so the cheapest cut costs 2.
func ExampleLadder() {
	g, err := builder.BuildGraph(nil, builder.Ladder(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := cut.Search(g)
	fmt.Println(g.EdgeCount(), res.Cost)
	// Output:
	// 8 2
}
