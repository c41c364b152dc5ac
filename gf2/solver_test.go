package gf2_test

import (
	"testing"

	"github.com/katalvlaran/fastflow/gf2"
	"github.com/katalvlaran/fastflow/internal/bitset"
	"github.com/stretchr/testify/require"
)

// x0 + x1 = 1
//      x1 = 1
// Unique solution: x0=0, x1=1.
func TestSolveInPlaceUniqueSolution(t *testing.T) {
	m := gf2.NewMatrix(2, 2)
	m.Set(0, 0)
	m.Set(0, 1)
	m.SetRHS(0, true)
	m.Set(1, 1)
	m.SetRHS(1, true)

	solver := gf2.Attach(m)
	x := bitset.New(2)
	solved, rank := solver.SolveInPlace(x, m.Width())
	require.True(t, solved)
	require.Equal(t, 2, rank)
	require.False(t, x.Test(0))
	require.True(t, x.Test(1))
	_ = solver.Detach()
}

// x0 = 0
// 0  = 1   (unsatisfiable row)
func TestSolveInPlaceInfeasible(t *testing.T) {
	m := gf2.NewMatrix(2, 1)
	m.Set(0, 0)
	m.SetRHS(0, false)
	m.SetRHS(1, true) // row with all-zero left side and RHS=1

	solver := gf2.Attach(m)
	x := bitset.New(1)
	solved, _ := solver.SolveInPlace(x, m.Width())
	require.False(t, solved)
}

// Underdetermined system: x0 + x1 = 1 only. x1 is free; any solution
// accepted, back-substitution defaults free columns to 0.
func TestSolveInPlaceFreeColumnDefaultsZero(t *testing.T) {
	m := gf2.NewMatrix(1, 2)
	m.Set(0, 0)
	m.Set(0, 1)
	m.SetRHS(0, true)

	solver := gf2.Attach(m)
	x := bitset.New(2)
	solved, rank := solver.SolveInPlace(x, m.Width())
	require.True(t, solved)
	require.Equal(t, 1, rank)
	require.True(t, x.Test(0))
	require.False(t, x.Test(1))
}

func TestAttachDetachReusesStorage(t *testing.T) {
	m := gf2.NewMatrix(1, 1)
	solver := gf2.Attach(m)
	got := solver.Detach()
	require.Same(t, m, got)
}
