// Package cflow finds a maximally-delayed causal flow (Danos-Kashefi
// flow) on an open graph, the simplest of fastflow's three flavors
// (SPEC_FULL.md §4.4). Every f(u) is a single vertex, so no GF(2) linear
// algebra is needed at all — cflow is a pure reverse breadth-first
// expansion from the output set O, included as the simplest driver and
// as a reference point against which gflow/pflow degenerate.
//
// What
//
//   - A vertex u (not an output) is correctable at the current round
//     iff it has a neighbor v already placed (v ∈ O or already
//     corrected) such that v has no other uncorrected neighbor, and
//     v ∉ I. Then f(u) := {v}.
//   - Rounds repeat until a round corrects nothing; success iff every
//     non-output vertex was eventually corrected.
//
// Complexity: O(V*(V+E)) in the straightforward implementation below —
// acceptable for the graph sizes this module targets (see SPEC_FULL.md's
// Non-goals: no streaming/incremental updates, no weighted/multigraph
// support).
//
// Errors: Find never returns an error — per SPEC_FULL.md §7, a top-level
// call has exactly two outcomes, a flow or its absence (ok == false).
package cflow
