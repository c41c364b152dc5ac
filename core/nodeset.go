package core

import "github.com/katalvlaran/fastflow/internal/bitset"

// NodeSet is an ordered, O(1)-membership set of vertex ids over a fixed
// universe [0,n). It backs I, O, colset, rowset_upper, rowset_lower,
// ocset, and every other frontier set the drivers maintain (SPEC_FULL.md
// §3's "Frontier sets"). "Ordered" here means iteration is always in
// increasing vertex-id order — a cheap, fully deterministic substitute
// for the Rust original's IndexSet, satisfying the "stable iteration
// within a single matrix build" requirement without needing insertion
// order.
type NodeSet struct {
	bits *bitset.Set
}

// NewNodeSet returns an empty NodeSet over universe size n.
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{bits: bitset.New(n)}
}

// NewNodeSetFromSlice returns a NodeSet over universe size n containing
// the given vertex ids. Ids are not range-checked (an out-of-range id
// may panic or be stored past the universe): callers only ever pass ids
// already validated against the same graph's N().
func NewNodeSetFromSlice(n int, ids []int) *NodeSet {
	s := NewNodeSet(n)
	for _, v := range ids {
		s.Insert(v)
	}
	return s
}

// FullNodeSet returns a NodeSet containing every vertex in [0,n).
func FullNodeSet(n int) *NodeSet {
	s := NewNodeSet(n)
	for v := 0; v < n; v++ {
		s.Insert(v)
	}
	return s
}

// Len reports the universe size (not the cardinality — use Count).
func (s *NodeSet) Len() int { return s.bits.Len() }

// Count reports the number of members.
func (s *NodeSet) Count() int { return s.bits.Count() }

// Contains reports whether v is a member.
func (s *NodeSet) Contains(v int) bool { return s.bits.Test(v) }

// Insert adds v, reporting whether it was newly added.
func (s *NodeSet) Insert(v int) bool {
	if s.bits.Test(v) {
		return false
	}
	s.bits.SetBit(v)
	return true
}

// Remove deletes v, reporting whether it was present.
func (s *NodeSet) Remove(v int) bool {
	if !s.bits.Test(v) {
		return false
	}
	s.bits.ClearBit(v)
	return true
}

// Clear empties the set in place without changing its universe.
func (s *NodeSet) Clear() { s.bits.ClearAll() }

// IsEmpty reports whether the set has no members.
func (s *NodeSet) IsEmpty() bool { return s.bits.IsZero() }

// Each calls fn once per member, in increasing order.
func (s *NodeSet) Each(fn func(v int)) { s.bits.Each(fn) }

// Slice materializes the members into a freshly allocated, increasing
// slice. Use sparingly on hot paths; Each avoids the allocation.
func (s *NodeSet) Slice() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(v int) { out = append(out, v) })
	return out
}

// Clone returns an independent copy.
func (s *NodeSet) Clone() *NodeSet {
	return &NodeSet{bits: s.bits.Clone()}
}

// UnionWith adds every member of other into s (s |= other).
func (s *NodeSet) UnionWith(other *NodeSet) {
	other.Each(func(v int) { s.Insert(v) })
}

// DifferenceWith removes every member of other from s (s \= other).
func (s *NodeSet) DifferenceWith(other *NodeSet) {
	other.Each(func(v int) { s.Remove(v) })
}

// Intersect returns a new NodeSet containing members present in both.
func (s *NodeSet) Intersect(other *NodeSet) *NodeSet {
	out := NewNodeSet(s.Len())
	s.Each(func(v int) {
		if other.Contains(v) {
			out.Insert(v)
		}
	})
	return out
}

// Difference returns a new NodeSet of members in s but not in other,
// leaving both operands untouched (unlike DifferenceWith).
func (s *NodeSet) Difference(other *NodeSet) *NodeSet {
	out := NewNodeSet(s.Len())
	s.Each(func(v int) {
		if !other.Contains(v) {
			out.Insert(v)
		}
	})
	return out
}
