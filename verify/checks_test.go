package verify_test

import (
	"testing"

	"github.com/katalvlaran/fastflow/cflow"
	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/flowcore"
	"github.com/katalvlaran/fastflow/gflow"
	"github.com/katalvlaran/fastflow/pflow"
	"github.com/katalvlaran/fastflow/verify"
	"github.com/stretchr/testify/require"
)

func TestDomainSingletonAcceptsValidCflowResult(t *testing.T) {
	n := 2
	i := core.NewNodeSetFromSlice(n, []int{0})
	o := core.NewNodeSetFromSlice(n, []int{1})
	f := map[int]int{0: 1}

	require.NoError(t, verify.DomainSingleton(f, n, i, o))
}

func TestDomainRejectsInputInImage(t *testing.T) {
	n := 3
	i := core.NewNodeSetFromSlice(n, []int{2})
	o := core.NewNodeSetFromSlice(n, []int{1})
	// dom(f) = V\O = {0,2} is fully covered, but f(2) reaches input 2.
	f := map[int]*core.NodeSet{
		0: core.NewNodeSetFromSlice(n, []int{0}),
		2: core.NewNodeSetFromSlice(n, []int{2}),
	}

	err := verify.Domain(f, n, i, o)
	require.ErrorIs(t, err, verify.ErrInputInImage)
}

func TestInitialRejectsNonzeroOutputLayer(t *testing.T) {
	o := core.NewNodeSetFromSlice(2, []int{1})
	layer := flowcore.Layer{1, 2}

	err := verify.Initial(layer, o)
	require.ErrorIs(t, err, verify.ErrOutputLayer)
}

// Pair on a line with f(0)={1} satisfies the XY-plane constraint:
// (0 ∈ f(0), 0 ∈ Odd(f(0))) must equal (false, true). Odd({1}) at
// vertex 0 means |N(0) ∩ {1}| is odd, i.e. the edge 0-1 itself.
func TestPflowDefinitionAcceptsPairOnLine(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	layer := flowcore.Layer{1, 0}
	f := map[int]*core.NodeSet{0: core.NewNodeSetFromSlice(2, []int{1})}
	pp := pflow.PlaneAssignment{0: pflow.XY}

	require.NoError(t, verify.PflowDefinition(f, layer, g, pp))
}

// Round-trip law (spec.md §8): a driver's own witness always survives
// its flavor's verify entrypoint.
func TestRoundTripCflow(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}
	i := core.NewNodeSetFromSlice(5, []int{0})
	o := core.NewNodeSetFromSlice(5, []int{4})

	res, ok := cflow.Find(g, i, o)
	require.True(t, ok)
	require.NoError(t, verify.Cflow(res.F, res.Layer, 5, i, o))
}

func TestRoundTripGflow(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	i := core.NewNodeSet(3)
	o := core.NewNodeSetFromSlice(3, []int{2})

	res, ok := gflow.Find(g, i, o)
	require.True(t, ok)
	require.NoError(t, verify.Gflow(res.F, res.Layer, 3, i, o))
}

func TestRoundTripPflow(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	i := core.NewNodeSetFromSlice(2, []int{0})
	o := core.NewNodeSetFromSlice(2, []int{1})
	planes := pflow.PlaneAssignment{0: pflow.XY}

	res, ok := pflow.Find(g, i, o, planes)
	require.True(t, ok)
	require.NoError(t, verify.Pflow(res.F, res.Layer, g, i, o, planes))
}

func TestPflowDefinitionRejectsWrongPlaneConstraint(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	layer := flowcore.Layer{1, 0}
	// f(0)={1} but declared YZ requires (true,false); actual is (false,true).
	f := map[int]*core.NodeSet{0: core.NewNodeSetFromSlice(2, []int{1})}
	pp := pflow.PlaneAssignment{0: pflow.YZ}

	err = verify.PflowDefinition(f, layer, g, pp)
	require.ErrorIs(t, err, verify.ErrPlaneConstraint)
}
