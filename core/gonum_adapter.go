package core

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// gonumView is a read-only graph.Undirected view over a Graph, letting
// callers run gonum's traversal/analysis algorithms over the exact same
// open graph the solver packages consume (SPEC_FULL.md §2's domain-stack
// wiring for gonum.org/v1/gonum). It never copies adjacency: every method
// delegates straight back to the underlying Graph.
type gonumView struct {
	g *Graph
}

// AsGonum wraps g as a gonum graph.Undirected. The returned view is
// read-only; mutating g after wrapping is visible through the view
// (there is no snapshot), matching Graph's own "immutable during a
// single find call" contract from spec.md §3.
func AsGonum(g *Graph) graph.Undirected {
	return &gonumView{g: g}
}

// Node returns the gonum node for id, or nil if id is out of range.
func (v *gonumView) Node(id int64) graph.Node {
	if id < 0 || int(id) >= v.g.N() {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns every vertex 0..N-1 as a gonum node iterator.
func (v *gonumView) Nodes() graph.Nodes {
	nodes := make([]graph.Node, v.g.N())
	for i := 0; i < v.g.N(); i++ {
		nodes[i] = simple.Node(int64(i))
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns id's neighbors as a gonum node iterator.
func (v *gonumView) From(id int64) graph.Nodes {
	if id < 0 || int(id) >= v.g.N() {
		return iterator.NewOrderedNodes(nil)
	}
	ids := v.g.Neighbors(int(id)).Slice()
	nodes := make([]graph.Node, len(ids))
	for i, nid := range ids {
		nodes[i] = simple.Node(int64(nid))
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether xid and yid are adjacent.
func (v *gonumView) HasEdgeBetween(xid, yid int64) bool {
	if xid < 0 || yid < 0 || int(xid) >= v.g.N() || int(yid) >= v.g.N() {
		return false
	}
	return v.g.HasEdge(int(xid), int(yid))
}

// Edge returns the edge between uid and vid, or nil if none exists.
func (v *gonumView) Edge(uid, vid int64) graph.Edge {
	return v.EdgeBetween(uid, vid)
}

// EdgeBetween returns the undirected edge between xid and yid, or nil.
func (v *gonumView) EdgeBetween(xid, yid int64) graph.Edge {
	if !v.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}
