package gf2

import "github.com/katalvlaran/fastflow/internal/bitset"

// Solver performs in-place XOR-elimination on a borrowed Matrix. It
// exists, distinct from a free function, purely to carry the
// attach/detach ownership handoff described in SPEC_FULL.md §4.2: "the
// solver exposes attach/detach semantics so the driver retains ownership
// of the matrix storage across the three branches without reallocation."
// A Solver never allocates row storage itself; Attach borrows the
// driver's Matrix and Detach returns it, so the same backing rows flow
// through the XY/YZ/ZX branch attempts untouched by any fresh allocation.
type Solver struct {
	m *Matrix
}

// Attach borrows m, consuming it for the duration of one SolveInPlace call.
func Attach(m *Matrix) *Solver { return &Solver{m: m} }

// Detach releases the borrowed Matrix back to its owner.
func (s *Solver) Detach() *Matrix {
	m := s.m
	s.m = nil
	return m
}

// SolveInPlace row-reduces the attached Matrix to row-echelon form via
// XOR elimination and, if the resulting system is solvable, decodes a
// witness into x (SPEC_FULL.md §4.2). x must already be sized to
// Matrix.Width(); its bits are freely overwritten.
//
// Algorithm (forward elimination + back-substitution, not full
// Gauss-Jordan): for each data column j=0..C-1, find any row at or
// below the current pivot row with bit j set, swap it into the pivot
// position, and XOR it into every row *below* the pivot that still has
// bit j set. Once all columns are processed, any row with no set bits
// among its Width() data columns is a "zero row"; if its RHS bit is 1,
// the system is infeasible. Otherwise, back-substitute bottom-up over
// the pivot rows to produce one valid witness (SPEC_FULL.md: "This
// yields *some* solution — any solution is acceptable").
//
// rhsCol must equal Matrix.Width() — this package always works with a
// single right-hand side (b=1); the parameter is kept to mirror the
// spec's solve_in_place(M, x, rhs_col_index) signature.
func (s *Solver) SolveInPlace(x *bitset.Set, rhsCol int) (solved bool, rank int) {
	m := s.m
	if rhsCol != m.width {
		panic("gf2: rhsCol must equal Matrix.Width() (b=1)")
	}
	r, c := m.Rows(), m.Width()
	pivotCol := make([]int, 0, c)

	pivotRow := 0
	for j := 0; j < c && pivotRow < r; j++ {
		found := -1
		for i := pivotRow; i < r; i++ {
			if m.Test(i, j) {
				found = i
				break
			}
		}
		if found < 0 {
			continue // j is a free column; no pivot for it
		}
		if found != pivotRow {
			m.SwapRows(found, pivotRow)
		}
		for i := pivotRow + 1; i < r; i++ {
			if m.Test(i, j) {
				m.XorRowInto(pivotRow, i)
			}
		}
		pivotCol = append(pivotCol, j)
		pivotRow++
	}
	rank = pivotRow

	// Feasibility: every row with an all-zero left side must carry RHS=0.
	for i := rank; i < r; i++ {
		if m.RowIsZeroLeft(i) && m.RHS(i) {
			return false, rank
		}
	}

	// Back-substitution: walk pivot rows bottom-up.
	x.ClearAll()
	for k := rank - 1; k >= 0; k-- {
		j := pivotCol[k]
		val := m.RHS(k)
		for jp := j + 1; jp < c; jp++ {
			if m.Test(k, jp) && x.Test(jp) {
				val = !val
			}
		}
		x.Assign(j, val)
	}
	return true, rank
}
