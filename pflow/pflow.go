package pflow

import (
	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/flowcore"
	"github.com/katalvlaran/fastflow/gf2"
	"github.com/katalvlaran/fastflow/internal/bitset"
)

// Result holds a witnessed Pauli flow.
type Result struct {
	F     flowcore.CorrectionFunc
	Layer flowcore.Layer
}

type branch int

const (
	branchXY branch = iota
	branchYZ
	branchZX
)

// Find searches for a maximally-delayed Pauli flow on g with input set
// i, output set o, and a plane assignment pp for every vertex in V∖O
// (SPEC_FULL.md §6's pflow.find).
func Find(g *core.Graph, i, o *core.NodeSet, pp PlaneAssignment, opts ...flowcore.Option) (*Result, bool) {
	cfg := flowcore.Resolve(opts)
	n := g.N()
	log := cfg.Logger.With().Str("driver", "pflow").Logger()

	yset := ySet(n, pp)
	xyset := xySet(n, pp)
	yzset := yzSet(n, pp)

	ocset := core.FullNodeSet(n)
	ocset.DifferenceWith(o)

	rowsetUpper := core.FullNodeSet(n)
	rowsetUpper.DifferenceWith(yzset)
	rowsetLower := yset.Clone()
	colset := xyset.Clone()
	colset.DifferenceWith(i)

	f := make(map[int]*core.NodeSet, ocset.Count())
	layer := make(flowcore.Layer, n)
	work := gf2.NewMatrix(0, 0)

	for l := 0; ; l++ {
		log.Debug().Int("layer", l).Msg("pflow round")
		cset := core.NewNodeSet(n)

		ocset.Each(func(u int) {
			incUpper := flowcore.Include(rowsetUpper, u)
			excLower := flowcore.Exclude(rowsetLower, u)
			excCol := flowcore.Exclude(colset, u)
			defer incUpper.Close()
			defer excLower.Close()
			defer excCol.Close()

			rowsUpper := rowsetUpper.Slice()
			rowsLower := rowsetLower.Slice()
			tab := colset.Slice()
			if (len(rowsUpper)+len(rowsLower) == 0) || len(tab) == 0 {
				return
			}

			plane := pp[u]
			log.Debug().Int("u", u).Stringer("plane", plane).Msg("checking vertex")

			upperIdx := indexOf(rowsUpper)
			lowerIdx := indexOf(rowsLower)

			var x *bitset.Set
			var chosen branch
			solved := false

			if plane == XY || plane == X || plane == Y {
				x, solved = tryBranch(work, g, u, rowsUpper, rowsLower, tab, upperIdx, lowerIdx, branchXY)
				chosen = branchXY
			}
			// YZ and ZX put u itself into f(u), which an input vertex may not contain.
			if !solved && !i.Contains(u) && (plane == YZ || plane == Y || plane == Z) {
				x, solved = tryBranch(work, g, u, rowsUpper, rowsLower, tab, upperIdx, lowerIdx, branchYZ)
				chosen = branchYZ
			}
			if !solved && !i.Contains(u) && (plane == ZX || plane == Z || plane == X) {
				x, solved = tryBranch(work, g, u, rowsUpper, rowsLower, tab, upperIdx, lowerIdx, branchZX)
				chosen = branchZX
			}
			if !solved {
				log.Debug().Int("u", u).Msg("all branches failed")
				return
			}

			fu := core.NewNodeSet(n)
			x.Each(func(c int) { fu.Insert(tab[c]) })
			if chosen != branchXY {
				fu.Insert(u)
			}
			f[u] = fu
			layer[u] = l
			cset.Insert(u)
			log.Debug().Int("u", u).Msg("accepted")
		})

		if l == 0 {
			rowsetUpper.DifferenceWith(o)
			rowsetLower.DifferenceWith(o)
			oNotI := o.Difference(i)
			colset.UnionWith(oNotI)
		} else if cset.IsEmpty() {
			break
		}
		ocset.DifferenceWith(cset)
		rowsetUpper.DifferenceWith(cset)
		rowsetLower.DifferenceWith(cset)
		csetNotI := cset.Difference(i)
		colset.UnionWith(csetNotI)
	}

	if !ocset.IsEmpty() {
		log.Debug().Msg("no pauli flow")
		return nil, false
	}
	log.Debug().Msg("pauli flow found")
	return &Result{F: f, Layer: layer}, true
}

func indexOf(vs []int) map[int]int {
	m := make(map[int]int, len(vs))
	for idx, v := range vs {
		m[v] = idx
	}
	return m
}

// tryBranch rebuilds work's co-efficients and branch-specific RHS for
// candidate u and attempts to solve it, returning the witness bitset on
// success. work is reused storage, cleared and reshaped on every call.
func tryBranch(
	work *gf2.Matrix,
	g *core.Graph,
	u int,
	rowsUpper, rowsLower, tab []int,
	upperIdx, lowerIdx map[int]int,
	br branch,
) (*bitset.Set, bool) {
	nu, nl := len(rowsUpper), len(rowsLower)
	work.EnsureShape(nu+nl, len(tab))

	for r, v := range rowsUpper {
		nb := g.Neighbors(v)
		for c, colVertex := range tab {
			if nb.Contains(colVertex) {
				work.Set(r, c)
			}
		}
	}
	for r, v := range rowsLower {
		row := nu + r
		work.Set(row, r) // diagonal: odd-neighborhood self-correction term
		nb := g.Neighbors(v)
		for c, colVertex := range tab {
			if nb.Contains(colVertex) {
				work.Set(row, c)
			}
		}
	}

	gu := g.Neighbors(u)
	switch br {
	case branchXY:
		if r, ok := upperIdx[u]; ok {
			work.SetRHS(r, true)
		}
	case branchYZ:
		gu.Each(func(v int) {
			if r, ok := upperIdx[v]; ok {
				work.ToggleRHS(r)
			}
			if r, ok := lowerIdx[v]; ok {
				work.ToggleRHS(nu + r)
			}
		})
	case branchZX:
		if r, ok := upperIdx[u]; ok {
			work.SetRHS(r, true)
		}
		gu.Each(func(v int) {
			if r, ok := upperIdx[v]; ok {
				work.ToggleRHS(r)
			}
			if r, ok := lowerIdx[v]; ok {
				work.ToggleRHS(nu + r)
			}
		})
	}

	x := bitset.New(len(tab))
	solver := gf2.Attach(work)
	solved, _ := solver.SolveInPlace(x, work.Width())
	_ = solver.Detach()
	return x, solved
}
