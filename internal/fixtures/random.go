package fixtures

import (
	"math/rand"

	"github.com/katalvlaran/fastflow/core"
	"github.com/katalvlaran/fastflow/pflow"
)

// allPlanes lists every plane tag in wire-encoding order (spec.md §6),
// used to assign a random plane per non-output vertex.
var allPlanes = []pflow.Plane{pflow.XY, pflow.YZ, pflow.ZX, pflow.X, pflow.Y, pflow.Z}

// RandomOpenGraph samples an Erdős–Rényi-style open graph over n
// vertices: each unordered pair is wired independently with probability
// p, mirroring the teacher's builder.RandomSparse (stable i<j trial
// order, one Bernoulli draw per pair). O is a random non-empty subset
// of size at most n (every vertex can be an output, matching spec.md
// §8's "V⊆O" boundary); I is drawn from the complement of O, and every
// non-output vertex is given a uniformly random plane tag so the same
// instance exercises gflow (plane ignored) and every pflow branch.
//
// rng must be non-nil: unlike RandomSparse, there is no deterministic
// p∈{0,1} fallback here since property tests always want a live seed.
func RandomOpenGraph(rng *rand.Rand, n int, p float64) Scenario {
	g, err := core.NewGraph(n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				if err := g.AddEdge(i, j); err != nil {
					panic(err)
				}
			}
		}
	}

	outCount := 1 + rng.Intn(n)
	perm := rng.Perm(n)
	o := core.NewNodeSet(n)
	for _, v := range perm[:outCount] {
		o.Insert(v)
	}

	i := core.NewNodeSet(n)
	for _, v := range perm[outCount:] {
		if rng.Intn(2) == 0 {
			i.Insert(v)
		}
	}

	planes := make(pflow.PlaneAssignment, n-outCount)
	for _, v := range perm[outCount:] {
		planes[v] = allPlanes[rng.Intn(len(allPlanes))]
	}

	return Scenario{Name: "random-open-graph", G: g, I: i, O: o, Planes: planes}
}

// AddOutputOnlyEdge inserts an edge between two distinct members of o,
// picking the lexicographically first pair not already connected (or
// reporting false if o is already a clique). It exists for spec.md §8's
// invariant "adding an edge only between two output vertices never
// changes whether find succeeds for pflow/gflow".
func AddOutputOnlyEdge(g *core.Graph, o *core.NodeSet) bool {
	members := o.Slice()
	for a := 0; a < len(members); a++ {
		for b := a + 1; b < len(members); b++ {
			u, v := members[a], members[b]
			if !g.HasEdge(u, v) {
				_ = g.AddEdge(u, v)
				return true
			}
		}
	}
	return false
}
