package gf2

import "github.com/katalvlaran/fastflow/internal/bitset"

// Matrix is a dense R×(C+1) bitset-row matrix over GF(2): C data columns
// plus one trailing right-hand-side column at index C (b=1, per
// SPEC_FULL.md §3 — "b = number of simultaneous RHS (always 1 here)").
// It is the single reusable working-matrix storage the drivers reshape
// and rebuild once per candidate vertex per layer, per branch.
type Matrix struct {
	rows  []*bitset.Set
	width int // C; row bit-width is width+1 (RHS at column width)
}

// NewMatrix allocates a zeroed R×(C+1) Matrix.
func NewMatrix(r, width int) *Matrix {
	m := &Matrix{width: width}
	m.EnsureShape(r, width)
	return m
}

// EnsureShape resizes m to r rows of width+1 bits each, clearing every
// cell. Per SPEC_FULL.md §4.1, "resizing never preserves old bits" —
// rows are reused for their backing storage when capacity allows, but
// their contents are always rezeroed, never carried over.
func (m *Matrix) EnsureShape(r, width int) {
	m.width = width
	rowWidth := width + 1
	if cap(m.rows) >= r {
		m.rows = m.rows[:r]
	} else {
		grown := make([]*bitset.Set, r)
		copy(grown, m.rows)
		m.rows = grown
	}
	for i := 0; i < r; i++ {
		if m.rows[i] == nil {
			m.rows[i] = bitset.New(rowWidth)
		} else {
			m.rows[i].Resize(rowWidth)
		}
	}
}

// Rows reports the current row count R.
func (m *Matrix) Rows() int { return len(m.rows) }

// Width reports the current data-column count C (excluding the RHS column).
func (m *Matrix) Width() int { return m.width }

// Test reports bit (r,c) for a data column c in [0,Width()).
func (m *Matrix) Test(r, c int) bool { return m.rows[r].Test(c) }

// Set sets bit (r,c) to 1 for a data column c in [0,Width()).
func (m *Matrix) Set(r, c int) { m.rows[r].SetBit(c) }

// Clear sets bit (r,c) to 0 for a data column c in [0,Width()).
func (m *Matrix) Clear(r, c int) { m.rows[r].ClearBit(c) }

// Toggle flips bit (r,c) for a data column c in [0,Width()).
func (m *Matrix) Toggle(r, c int) { m.rows[r].Toggle(c) }

// RHS reports the right-hand-side bit of row r.
func (m *Matrix) RHS(r int) bool { return m.rows[r].Test(m.width) }

// SetRHS sets the right-hand-side bit of row r.
func (m *Matrix) SetRHS(r int, v bool) { m.rows[r].Assign(m.width, v) }

// ToggleRHS flips the right-hand-side bit of row r.
func (m *Matrix) ToggleRHS(r int) { m.rows[r].Toggle(m.width) }

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) { m.rows[i], m.rows[j] = m.rows[j], m.rows[i] }

// XorRowInto computes row[dst] ^= row[src], the elimination primitive.
func (m *Matrix) XorRowInto(src, dst int) { m.rows[src].XorInto(m.rows[dst]) }

// RowIsZeroLeft reports whether row r's data columns (excluding RHS)
// are all clear.
func (m *Matrix) RowIsZeroLeft(r int) bool {
	row := m.rows[r]
	for c := 0; c < m.width; c++ {
		if row.Test(c) {
			return false
		}
	}
	return true
}
