package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/flowcore"
	"github.com/katalvlaran/fastflow/pflow"
)

// Sentinel errors distinguish which assertion failed without requiring
// callers to parse message text.
var (
	ErrDomainMismatch  = errors.New("verify: dom(f) != V \\ O")
	ErrInputInImage    = errors.New("verify: f(u) reaches an input vertex")
	ErrOutputLayer     = errors.New("verify: output vertex has nonzero layer")
	ErrLayerOrder      = errors.New("verify: correction does not flow to a non-decreasing layer")
	ErrYCorrection     = errors.New("verify: Y-plane correction-parity violated")
	ErrPlaneConstraint = errors.New("verify: plane membership constraint violated")
)

// Domain checks dom(f) = V∖O and, for every u, f(u) ⊆ V∖I
// (SPEC_FULL.md §4.7's domain check). n is the graph's vertex count.
func Domain(f map[int]*core.NodeSet, n int, i, o *core.NodeSet) error {
	nonOutput := core.FullNodeSet(n)
	nonOutput.DifferenceWith(o)

	count := 0
	for u := range f {
		if !nonOutput.Contains(u) {
			return fmt.Errorf("%w: f is defined at output vertex %d", ErrDomainMismatch, u)
		}
		count++
	}
	if count != nonOutput.Count() {
		return fmt.Errorf("%w: f covers %d vertices, want %d", ErrDomainMismatch, count, nonOutput.Count())
	}
	for u, fu := range f {
		var bad = -1
		fu.Each(func(v int) {
			if bad < 0 && i.Contains(v) {
				bad = v
			}
		})
		if bad >= 0 {
			return fmt.Errorf("%w: f(%d) contains input vertex %d", ErrInputInImage, u, bad)
		}
	}
	return nil
}

// DomainSingleton is Domain specialized for cflow's singleton-valued f.
func DomainSingleton(f map[int]int, n int, i, o *core.NodeSet) error {
	asSets := make(map[int]*core.NodeSet, len(f))
	for u, v := range f {
		s := core.NewNodeSet(n)
		s.Insert(v)
		asSets[u] = s
	}
	return Domain(asSets, n, i, o)
}

// Initial checks that every output vertex sits at layer 0
// (SPEC_FULL.md §4.7's initial check, shared across all three flavors).
func Initial(layer flowcore.Layer, o *core.NodeSet) error {
	var bad = -1
	o.Each(func(v int) {
		if bad < 0 && layer[v] != 0 {
			bad = v
		}
	})
	if bad >= 0 {
		return fmt.Errorf("%w: vertex %d has layer %d", ErrOutputLayer, bad, layer[bad])
	}
	return nil
}

// Cflow runs every applicable check (SPEC_FULL.md §4.7) over a witnessed
// causal flow: domain, then initial-layer.
func Cflow(f map[int]int, layer flowcore.Layer, n int, i, o *core.NodeSet) error {
	if err := DomainSingleton(f, n, i, o); err != nil {
		return err
	}
	return Initial(layer, o)
}

// Gflow runs every applicable check over a witnessed generalized flow:
// domain, then initial-layer.
func Gflow(f flowcore.CorrectionFunc, layer flowcore.Layer, n int, i, o *core.NodeSet) error {
	if err := Domain(f, n, i, o); err != nil {
		return err
	}
	return Initial(layer, o)
}

// Pflow runs every applicable check over a witnessed Pauli flow: domain,
// initial-layer, then the full plane-constraint definitional check.
func Pflow(f flowcore.CorrectionFunc, layer flowcore.Layer, g *core.Graph, i, o *core.NodeSet, pp pflow.PlaneAssignment) error {
	if err := Domain(f, g.N(), i, o); err != nil {
		return err
	}
	if err := Initial(layer, o); err != nil {
		return err
	}
	return PflowDefinition(f, layer, g, pp)
}

// PflowDefinition re-checks a witnessed Pauli flow against the plane
// constraints of SPEC_FULL.md §4.7, ported line for line from
// original_source/src/pflow.rs's check_definition.
func PflowDefinition(f map[int]*core.NodeSet, layer flowcore.Layer, g *core.Graph, pp pflow.PlaneAssignment) error {
	for u, fu := range f {
		plane := pp[u]

		var layerErr = -1
		fu.Each(func(v int) {
			if layerErr >= 0 || v == u || layer[u] > layer[v] {
				return
			}
			if pp[v] != pflow.X && pp[v] != pflow.Y {
				layerErr = v
			}
		})
		if layerErr >= 0 {
			return fmt.Errorf("%w: f(%d) reaches %d but plane(%d)=%v not in {X,Y}",
				ErrLayerOrder, u, layerErr, layerErr, pp[layerErr])
		}

		odd := core.OddNeighbors(g, fu)
		odd.Each(func(v int) {
			if layerErr >= 0 || v == u || layer[u] > layer[v] {
				return
			}
			if pp[v] != pflow.Y && pp[v] != pflow.Z {
				layerErr = v
			}
		})
		if layerErr >= 0 {
			return fmt.Errorf("%w: Odd(f(%d)) reaches %d but plane(%d)=%v not in {Y,Z}",
				ErrLayerOrder, u, layerErr, layerErr, pp[layerErr])
		}

		symDiff := fu.Clone()
		symDiff.UnionWith(odd)
		both := fu.Intersect(odd)
		symDiff.DifferenceWith(both)

		var yErr = -1
		symDiff.Each(func(v int) {
			if yErr >= 0 || v == u || layer[u] > layer[v] {
				return
			}
			if pp[v] == pflow.Y {
				yErr = v
			}
		})
		if yErr >= 0 {
			return fmt.Errorf("%w: %d must be corrected by f(%d) xor Odd(f(%d))", ErrYCorrection, yErr, u, u)
		}

		a, b := fu.Contains(u), odd.Contains(u)
		ok := true
		switch plane {
		case pflow.XY:
			ok = !a && b
		case pflow.YZ:
			ok = a && !b
		case pflow.ZX:
			ok = a && b
		case pflow.X:
			ok = b
		case pflow.Y:
			ok = a != b
		case pflow.Z:
			ok = a
		}
		if !ok {
			return fmt.Errorf("%w: vertex %d plane %v violated by (in f, in Odd(f))=(%t,%t)",
				ErrPlaneConstraint, u, plane, a, b)
		}
	}
	return nil
}
