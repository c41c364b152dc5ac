package gflow

import (
	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/flowcore"
	"github.com/katalvlaran/fastflow/gf2"
	"github.com/katalvlaran/fastflow/internal/bitset"
)

// Result holds a witnessed generalized flow.
type Result struct {
	F     flowcore.CorrectionFunc
	Layer flowcore.Layer
}

// Find searches for a maximally-delayed gflow on g with input set i and
// output set o (SPEC_FULL.md §6's gflow.find).
func Find(g *core.Graph, i, o *core.NodeSet, opts ...flowcore.Option) (*Result, bool) {
	cfg := flowcore.Resolve(opts)
	n := g.N()
	log := cfg.Logger.With().Str("driver", "gflow").Logger()

	corrected := core.NewNodeSet(n) // non-output vertices accepted in a strictly earlier layer
	ocset := core.FullNodeSet(n)
	ocset.DifferenceWith(o)

	layer := make(flowcore.Layer, n)
	f := make(map[int]*core.NodeSet, ocset.Count())
	work := gf2.NewMatrix(0, 0)

	for l := 1; ; l++ {
		log.Debug().Int("layer", l).Msg("gflow round")
		type accept struct {
			u int
			s *core.NodeSet
		}
		var accepted []accept

		ocset.Each(func(u int) {
			colset := corrected.Clone()
			colset.UnionWith(o)
			colset.DifferenceWith(i)
			colset.Remove(u)

			rowset := ocset.Clone()
			rowset.Remove(u)

			tab := colset.Slice()
			rows := rowset.Slice()

			work.EnsureShape(len(rows), len(tab))
			for r, v := range rows {
				nb := g.Neighbors(v)
				for c, colVertex := range tab {
					if nb.Contains(colVertex) {
						work.Set(r, c)
					}
				}
				if nb.Contains(u) {
					work.SetRHS(r, true)
				}
			}

			x := bitset.New(len(tab))
			solver := gf2.Attach(work)
			solved, _ := solver.SolveInPlace(x, work.Width())
			work = solver.Detach()
			if !solved {
				log.Debug().Int("u", u).Msg("unsolvable this layer")
				return
			}

			fu := core.NewNodeSet(n)
			x.Each(func(c int) { fu.Insert(tab[c]) })
			accepted = append(accepted, accept{u: u, s: fu})
			log.Debug().Int("u", u).Msg("accepted")
		})

		if len(accepted) == 0 {
			break
		}
		for _, a := range accepted {
			layer[a.u] = l
			f[a.u] = a.s
			corrected.Insert(a.u)
			ocset.Remove(a.u)
		}
	}

	if !ocset.IsEmpty() {
		log.Debug().Msg("no gflow")
		return nil, false
	}
	log.Debug().Msg("gflow found")
	return &Result{F: f, Layer: layer}, true
}
