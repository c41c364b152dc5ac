// Package core defines the open-graph data model shared by every flow
// driver in fastflow: a dense-vertex-id, undirected, simple Graph, and
// NodeSet, the ordered vertex-set primitive used for I/O sets, frontiers,
// and odd-neighborhoods.
//
// Unlike lvlath's original core.Graph (string vertex IDs, optional
// direction/weights/multi-edges/loops), the flow-finding problem this
// module solves (see SPEC_FULL.md §3) is defined over dense integer
// vertex ids in [0,n), always undirected, always simple. Graph is
// intentionally a narrower, purpose-built type rather than a generalized
// one: the solvers never need directed edges, weights, or parallel
// edges, and carrying that generality would just be unused surface.
//
// Graph is safe to build concurrently (construction takes a lock); once
// handed to cflow.Find / gflow.Find / pflow.Find it is treated as
// immutable and read concurrently by none of them (the solvers are
// single-threaded per call, per SPEC_FULL.md §"Concurrency & Resource Model").
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a non-positive vertex count was requested.
	ErrInvalidSize = errors.New("core: vertex count must be > 0")

	// ErrVertexRange indicates a vertex id outside [0,n) was used.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")
)
