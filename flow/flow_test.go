package flow_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-cut/builder"
	"github.com/katalvlaran/lvlath-cut/core"
	"github.com/katalvlaran/lvlath-cut/flow"
)

// solver lets one suite exercise both algorithms.
type solver func(context.Context, *core.Graph, string, string, *flow.FlowOptions) (flow.Result, error)

// FlowSuite groups behavioural tests shared by Edmonds–Karp and Dinic.
type FlowSuite struct {
	suite.Suite
	ctx   context.Context
	solve solver
}

func (s *FlowSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FlowSuite) graph(edges ...[3]interface{}) *core.Graph {
	g := core.NewGraph()
	for i, e := range edges {
		s.Require().NoError(g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int)), int64(i+1)))
	}

	return g
}

// TestSingleEdge: A-B (cap=5) => maxFlow = 5, cut = {1}.
func (s *FlowSuite) TestSingleEdge() {
	g := s.graph([3]interface{}{"A", "B", 5})

	res, err := s.solve(s.ctx, g, "A", "B", nil)
	s.Require().NoError(err)
	s.Equal(int64(5), res.Value)
	s.Equal([]string{"A"}, res.SourceSide)
	s.Equal([]int64{1}, res.CutIDs)
}

// TestTriangle mirrors the canonical three-edge instance.
func (s *FlowSuite) TestTriangle() {
	g := s.graph(
		[3]interface{}{"A", "B", 3},
		[3]interface{}{"A", "Z", 5},
		[3]interface{}{"B", "Z", 1},
	)

	res, err := s.solve(s.ctx, g, "A", "Z", nil)
	s.Require().NoError(err)
	s.Equal(int64(6), res.Value, "direct 5 plus 1 through B")
	s.Equal([]int64{2, 3}, res.CutIDs)
}

// TestUndirectedCapacity: flow may use an edge against its insertion order.
func (s *FlowSuite) TestUndirectedCapacity() {
	g := s.graph(
		[3]interface{}{"B", "A", 4},
		[3]interface{}{"Z", "B", 7},
	)

	res, err := s.solve(s.ctx, g, "A", "Z", nil)
	s.Require().NoError(err)
	s.Equal(int64(4), res.Value)
	s.Equal([]int64{1}, res.CutIDs)
}

// TestRemovedEdgesCarryNothing: the removal stack hides capacity.
func (s *FlowSuite) TestRemovedEdgesCarryNothing() {
	g := s.graph(
		[3]interface{}{"A", "B", 3},
		[3]interface{}{"B", "Z", 3},
		[3]interface{}{"A", "Z", 2},
	)
	_, err := g.RemoveEdge("A", "Z")
	s.Require().NoError(err)

	res, err := s.solve(s.ctx, g, "A", "Z", nil)
	s.Require().NoError(err)
	s.Equal(int64(3), res.Value)
	s.Equal(1, g.Depth(), "flow must not touch the removal stack")
}

// TestTerminals covers absent, disconnected and coinciding terminals.
func (s *FlowSuite) TestTerminals() {
	g := s.graph(
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"Y", "Z", 1},
	)

	res, err := s.solve(s.ctx, g, "A", "Z", nil)
	s.Require().NoError(err)
	s.Zero(res.Value)
	s.Equal([]string{"A", "B"}, res.SourceSide)
	s.Empty(res.CutIDs)

	res, err = s.solve(s.ctx, g, "A", "missing", nil)
	s.Require().NoError(err)
	s.Zero(res.Value)

	_, err = s.solve(s.ctx, g, "A", "missing", &flow.FlowOptions{Strict: true})
	s.ErrorIs(err, flow.ErrSinkNotFound)
	_, err = s.solve(s.ctx, g, "missing", "A", &flow.FlowOptions{Strict: true})
	s.ErrorIs(err, flow.ErrSourceNotFound)

	_, err = s.solve(s.ctx, g, "A", "A", nil)
	s.ErrorIs(err, flow.ErrSameTerminal)
	_, err = s.solve(s.ctx, nil, "A", "Z", nil)
	s.ErrorIs(err, flow.ErrNilGraph)
}

// TestCancelled: an expired context aborts before any augmentation.
func (s *FlowSuite) TestCancelled() {
	g := s.graph([3]interface{}{"A", "B", 5})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.solve(ctx, g, "A", "B", nil)
	s.ErrorIs(err, context.Canceled)
}

// TestCutWeightEqualsValue checks duality on random graphs.
func (s *FlowSuite) TestCutWeightEqualsValue() {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		g := randomGraph(s.T(), rng, 8, 0.4)
		res, err := s.solve(s.ctx, g, "0", "7", nil)
		s.Require().NoError(err)

		w, err := g.WeightOf(res.CutIDs)
		s.Require().NoError(err)
		s.Equal(res.Value, w, "round %d", round)
	}
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, &FlowSuite{solve: flow.EdmondsKarp})
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, &FlowSuite{solve: flow.Dinic})
}

// TestAlgorithmsAgree cross-checks the two algorithms, including Dinic
// with frequent level rebuilds.
func TestAlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ctx := context.Background()
	rebuild := &flow.FlowOptions{LevelRebuildInterval: 1}
	for round := 0; round < 40; round++ {
		g := randomGraph(t, rng, 10, 0.35)
		ek, err := flow.EdmondsKarp(ctx, g, "0", "9", nil)
		require.NoError(t, err)
		di, err := flow.Dinic(ctx, g, "0", "9", rebuild)
		require.NoError(t, err)
		require.Equal(t, ek.Value, di.Value, "round %d", round)
	}
}

// randomGraph builds a G(n, p) graph on vertices "0".."n-1" with weights 1..9.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithTerminals("0", strconv.Itoa(n-1)),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
	}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}
