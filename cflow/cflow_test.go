package cflow_test

import (
	"testing"

	"github.com/katalvlaran/fastflow/cflow"
	"github.com/katalvlaran/fastflow/core"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): pair on a line. g: 0-1. I={0}, O={1}.
func TestFindPairOnLine(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	i := core.NewNodeSetFromSlice(2, []int{0})
	o := core.NewNodeSetFromSlice(2, []int{1})

	res, ok := cflow.Find(g, i, o)
	require.True(t, ok)
	require.Equal(t, map[int]int{0: 1}, res.F)
	require.Equal(t, []int{1, 0}, []int(res.Layer))
}

// Scenario 2 (spec.md §8): linear chain length 5, 0-1-2-3-4. I={0}, O={4}.
func TestFindLinearChain(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}
	i := core.NewNodeSetFromSlice(5, []int{0})
	o := core.NewNodeSetFromSlice(5, []int{4})

	res, ok := cflow.Find(g, i, o)
	require.True(t, ok)
	require.Equal(t, map[int]int{0: 1, 1: 2, 2: 3, 3: 4}, res.F)
	require.Equal(t, []int{4, 3, 2, 1, 0}, []int(res.Layer))
}

// Boundary: V ⊆ O is trivially satisfied with empty f and layer all 0.
func TestFindAllOutputsTrivial(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	i := core.NewNodeSet(3)
	o := core.FullNodeSet(3)

	res, ok := cflow.Find(g, i, o)
	require.True(t, ok)
	require.Empty(t, res.F)
	require.Equal(t, []int{0, 0, 0}, []int(res.Layer))
}

// No causal flow: a single isolated non-output vertex has no neighbor
// at all to correct it.
func TestFindNoFlowIsolatedVertex(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	i := core.NewNodeSet(2)
	o := core.NewNodeSetFromSlice(2, []int{1})

	_, ok := cflow.Find(g, i, o)
	require.False(t, ok)
}
