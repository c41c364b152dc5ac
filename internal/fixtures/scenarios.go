package fixtures

import (
	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/pflow"
)

// Scenario bundles an open graph with the inputs every flavor's Find
// needs: the adjacency, the input/output sets, and (for pflow) a plane
// assignment. cflow/gflow tests ignore Planes.
type Scenario struct {
	Name   string
	G      *core.Graph
	I      *core.NodeSet
	O      *core.NodeSet
	Planes pflow.PlaneAssignment
}

func edges(n int, pairs [][2]int) *core.Graph {
	g, err := core.NewGraph(n)
	if err != nil {
		panic(err)
	}
	for _, e := range pairs {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	return g
}

// PairOnLine is spec.md §8 scenario 1: g: 0-1, I={0}, O={1}, plane={}.
func PairOnLine() Scenario {
	g := edges(2, [][2]int{{0, 1}})
	return Scenario{
		Name: "pair-on-line",
		G:    g,
		I:    core.NewNodeSetFromSlice(2, []int{0}),
		O:    core.NewNodeSetFromSlice(2, []int{1}),
	}
}

// LinearChainFive is spec.md §8 scenario 2: g: 0-1-2-3-4, I={0}, O={4},
// every non-output vertex XY.
func LinearChainFive() Scenario {
	g := edges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	return Scenario{
		Name: "linear-chain-five",
		G:    g,
		I:    core.NewNodeSetFromSlice(5, []int{0}),
		O:    core.NewNodeSetFromSlice(5, []int{4}),
		Planes: pflow.PlaneAssignment{
			0: pflow.XY, 1: pflow.XY, 2: pflow.XY, 3: pflow.XY,
		},
	}
}

// TwoDisjointChains is spec.md §8 scenario 3: vertices {0..5}, edges
// 0-2, 1-3, 2-4, 3-5, I={0,1}, O={4,5}, all non-outputs XY.
func TwoDisjointChains() Scenario {
	g := edges(6, [][2]int{{0, 2}, {1, 3}, {2, 4}, {3, 5}})
	return Scenario{
		Name: "two-disjoint-chains",
		G:    g,
		I:    core.NewNodeSetFromSlice(6, []int{0, 1}),
		O:    core.NewNodeSetFromSlice(6, []int{4, 5}),
		Planes: pflow.PlaneAssignment{
			0: pflow.XY, 1: pflow.XY, 2: pflow.XY, 3: pflow.XY,
		},
	}
}

// MixedPlanesPauliBranches is spec.md §8 scenario 4: vertex 0 is ZX and
// vertex 1 is YZ (each adjacent to both outputs), forcing pflow's
// non-XY branches; both corrections witness the self-inclusion a pure
// XY-plane vertex can never need.
func MixedPlanesPauliBranches() Scenario {
	g := edges(4, [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}})
	return Scenario{
		Name: "mixed-planes-pauli-branches",
		G:    g,
		I:    core.NewNodeSet(4),
		O:    core.NewNodeSetFromSlice(4, []int{2, 3}),
		Planes: pflow.PlaneAssignment{
			0: pflow.ZX, 1: pflow.YZ,
		},
	}
}

// UnflowableConfiguration is spec.md §8 scenario 5: two edge-less
// XY-plane vertices, each forced into the unsatisfiable "u's own
// odd-neighborhood row is all-zero coefficients but RHS=1" system, so
// no layer ever accepts either one regardless of the other's state.
func UnflowableConfiguration() Scenario {
	g := edges(3, nil)
	return Scenario{
		Name: "unflowable-configuration",
		G:    g,
		I:    core.NewNodeSetFromSlice(3, []int{}),
		O:    core.NewNodeSetFromSlice(3, []int{2}),
		Planes: pflow.PlaneAssignment{
			0: pflow.XY, 1: pflow.XY,
		},
	}
}

// PauliShortcut is spec.md §8 scenario 6: planes {0:Z,1:Z,2:Y,3:Y} on a
// 5-vertex graph, demonstrating self-inclusion for the two Z-plane
// vertices (the Y-plane vertices are corrected by the XY branch).
func PauliShortcut() Scenario {
	g := edges(5, [][2]int{{0, 4}, {1, 4}, {2, 4}, {3, 4}, {0, 1}})
	return Scenario{
		Name: "pauli-shortcut",
		G:    g,
		I:    core.NewNodeSetFromSlice(5, []int{}),
		O:    core.NewNodeSetFromSlice(5, []int{4}),
		Planes: pflow.PlaneAssignment{
			0: pflow.Z, 1: pflow.Z, 2: pflow.Y, 3: pflow.Y,
		},
	}
}

// All returns every named scenario, in spec.md §8's listed order.
func All() []Scenario {
	return []Scenario{
		PairOnLine(),
		LinearChainFive(),
		TwoDisjointChains(),
		MixedPlanesPauliBranches(),
		UnflowableConfiguration(),
		PauliShortcut(),
	}
}
