// Package gflow finds a maximally-delayed generalized flow (gflow) on
// an open graph (SPEC_FULL.md §4.5). Unlike pflow, every vertex has a
// single XY-style branch: no measurement planes, no row-partitioning,
// no diagonal (Y-vertex) terms. It is gf2's simplest consumer and the
// best place to read the shared "build one GF(2) system per candidate
// vertex, try to solve it, decode a witness into a vertex set" shape
// before tackling pflow's three-branch version.
//
// Per layer L, for every not-yet-corrected non-output vertex u:
//
//	colset = ((corrected vertices from strictly earlier layers ∪ O) \ I) \ {u}
//	rowset = ((V \ O) \ corrected) \ {u}
//	A[r,c] = 1 iff col(c) is a neighbor of row(r)
//	b[r]   = 1 iff row(r) is a neighbor of u
//
// u is accepted iff Ax=b is solvable; f(u) is the set of columns with
// x=1. A layer that accepts nothing ends the search; success iff every
// non-output vertex was eventually accepted.
package gflow
