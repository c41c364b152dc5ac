package cflow

import (
	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/flowcore"
)

// Result holds a witnessed causal flow: F maps each non-output vertex
// to its single correction vertex, and Layer is the measurement-order
// labeling (SPEC_FULL.md §3).
type Result struct {
	F     map[int]int
	Layer flowcore.Layer
}

// Find searches for a maximally-delayed causal flow on g with input set
// I and output set O, reporting (result, true) on success or (nil,
// false) if no causal flow exists (SPEC_FULL.md §6's cflow.find).
func Find(g *core.Graph, i, o *core.NodeSet, opts ...flowcore.Option) (*Result, bool) {
	cfg := flowcore.Resolve(opts)
	n := g.N()
	log := cfg.Logger.With().Str("driver", "cflow").Logger()

	out := o.Clone()
	pending := core.FullNodeSet(n)
	pending.DifferenceWith(o)

	layer := make(flowcore.Layer, n)
	f := make(map[int]int, pending.Count())

	l := 0
	for {
		log.Debug().Int("layer", l).Msg("reverse-bfs round")
		accepted := core.NewNodeSet(n)
		pending.Each(func(u int) {
			if accepted.Contains(u) {
				return
			}
			corrector, ok := findCorrector(g, u, out, i)
			if ok {
				f[u] = corrector
				accepted.Insert(u)
				log.Debug().Int("u", u).Int("f(u)", corrector).Msg("accepted")
			}
		})
		if accepted.IsEmpty() {
			break
		}
		l++
		accepted.Each(func(u int) { layer[u] = l })
		out.UnionWith(accepted)
		pending.DifferenceWith(accepted)
	}

	if !pending.IsEmpty() {
		log.Debug().Msg("no causal flow")
		return nil, false
	}
	log.Debug().Msg("causal flow found")
	return &Result{F: f, Layer: layer}, true
}

// findCorrector looks for a vertex v ∈ Neighbors(u) ∩ out such that v
// has no uncorrected neighbor other than u, and v ∉ I (f(u) must avoid
// inputs). Returns the smallest such v, for determinism.
func findCorrector(g *core.Graph, u int, out, i *core.NodeSet) (int, bool) {
	best := -1
	g.Neighbors(u).Each(func(v int) {
		if best >= 0 || !out.Contains(v) || i.Contains(v) {
			return
		}
		if onlyUncorrectedNeighborIs(g, v, u, out) {
			best = v
		}
	})
	if best < 0 {
		return 0, false
	}
	return best, true
}

// onlyUncorrectedNeighborIs reports whether every neighbor of v other
// than u is already in out.
func onlyUncorrectedNeighborIs(g *core.Graph, v, u int, out *core.NodeSet) bool {
	ok := true
	g.Neighbors(v).Each(func(w int) {
		if w != u && !out.Contains(w) {
			ok = false
		}
	})
	return ok
}
