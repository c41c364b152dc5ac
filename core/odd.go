package core

// OddNeighbors computes Odd(S) = {v ∈ V : |N(v) ∩ S| is odd}, via
// XOR-accumulation over the neighborhoods of S's members (SPEC_FULL.md
// §4.3). XOR-folding is both the simplest and the correct way to compute
// parity: a vertex v ends up set in the accumulator iff it was toggled
// an odd number of times, i.e. iff an odd number of its neighbors lie
// in S.
func OddNeighbors(g *Graph, s *NodeSet) *NodeSet {
	acc := NewNodeSet(g.N())
	s.Each(func(u int) {
		nb := g.Neighbors(u)
		nb.Each(func(v int) {
			if acc.Contains(v) {
				acc.Remove(v)
			} else {
				acc.Insert(v)
			}
		})
	})
	return acc
}
