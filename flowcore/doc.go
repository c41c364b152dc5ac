// Package flowcore holds the small amount of bookkeeping shared by the
// flow drivers: the Layer labeling and driver Options (cflow, gflow,
// pflow), the CorrectionFunc type (gflow, pflow), and the scoped
// per-vertex frontier mutations pflow uses, described in SPEC_FULL.md §9
// ("Scoped mutation without RAII").
//
// The Rust original (original_source/src/pflow.rs) expresses this with
// ScopedInclude/ScopedExclude guard structs whose Drop impl restores the
// target set. Go has no destructors, so ScopedInclude/ScopedExclude play
// the same role, with Close called via defer, exactly as SPEC_FULL.md's Design Notes anticipate ("stack-
// allocated guard objects, explicit save/restore, or recomputation").
package flowcore

import "github.com/katalvlaran/fastflow/core"

// Layer is a total function V → ℕ: layer[v] is the iteration at which v
// was accepted into the correction frontier, with layer[v] == 0 for
// every output vertex (SPEC_FULL.md §3).
type Layer []int

// CorrectionFunc is the partial mapping V → (set of vertices) that
// gflow and pflow produce (SPEC_FULL.md §3's "Correction function f").
// cflow uses the narrower map[int]int since every f(u) there is always
// a singleton.
type CorrectionFunc map[int]*core.NodeSet
