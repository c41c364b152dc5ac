// Package gf2 provides the dense bitset-row matrix and in-place
// Gaussian-elimination solver the flow drivers use to decide, for each
// candidate correction vertex, whether a system of linear equations
// over GF(2) is solvable (SPEC_FULL.md §§4.1, 4.2).
//
// The package mirrors the teacher library's matrix package in shape —
// a thin constructor plus a family of kernel functions — but it returns
// no errors, the element type is a single bit, not a float64, and
// elimination is XOR rather than floating-point arithmetic. No third-party GF(2)/bitset library
// appears anywhere in the retrieval pack (see DESIGN.md), so this is a
// from-scratch component built directly on internal/bitset.
package gf2
