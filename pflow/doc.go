// Package pflow finds a maximally-delayed Pauli flow on an open graph
// with a per-vertex measurement-plane assignment (SPEC_FULL.md §4.6),
// the most general — and most expensive — of fastflow's three flow
// flavors. It generalizes gflow exactly the way gflow generalizes
// cflow: gflow builds one GF(2) system per candidate vertex per layer;
// pflow builds a two-block system (an "upper" block over every
// row-eligible vertex, and a "lower" block carrying a diagonal term for
// Y-measured vertices) and tries up to three branch right-hand-sides
// (XY, YZ, ZX) per vertex, accepting the first branch that solves.
//
// Branch eligibility follows the vertex's own plane: XY-plane vertices
// only ever try the XY branch, but the Pauli planes (X, Y, Z) are
// under-determined enough to admit more than one — X tries XY and ZX,
// Y tries XY and YZ, Z tries YZ and ZX — and the driver always tries
// them in the fixed order XY, YZ, ZX, stopping at the first success.
// An input vertex only ever tries the XY branch: YZ and ZX add u itself
// to f(u), and f(u) never contains an input.
//
// Row/column bookkeeping mutates per vertex via a scoped include/exclude
// (flowcore.Include/Exclude) rather than a full recomputation: while u
// is being tried, u is temporarily added to the upper row set and
// temporarily removed from the lower row set and from the column set,
// then the guard restores all three on exit — ported from
// original_source/src/pflow.rs's ScopedInclude/ScopedExclude (a Drop
// guard there, an explicit Close()-via-defer guard here).
package pflow
