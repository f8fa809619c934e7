// SPDX-License-Identifier: MIT

// Package matrix: partially pivoted LU factorization and its consumers
// (determinant, linear solve, inverse).
//
// The factorization is P·A = L·U with L unit-lower-triangular, U
// upper-triangular and P a row permutation. Partial pivoting (largest
// absolute value in the remaining column) bounds element growth; a pivot
// whose magnitude falls below the configured tolerance is reported as
// ErrSingular instead of dividing into Inf/NaN.

package matrix

import "math"

// LUResult bundles the three factors of P·A = L·U.
// Each factor is freshly allocated and exclusively owned by the caller.
type LUResult struct {
	L *Dense // unit lower triangular (diagonal of ones)
	U *Dense // upper triangular
	P *Dense // permutation matrix (row swaps applied to A)
}

// LU computes the partially pivoted factorization P·A = L·U.
//
// Implementation:
//   - Stage 1: validate square input; clone A into the U workspace; start
//     L as zeros and P as the identity.
//   - Stage 2: for each column, select the max-|value| pivot row at or below
//     the diagonal; swap the rows of U, of P, and of the already-computed
//     L entries; store elimination multipliers into L and reduce U.
//   - Stage 3: set the L diagonal to ones.
//
// Inputs:
//   - m: square matrix (n×n).
//   - opts: WithPivotTolerance adjusts the singularity threshold.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular when the best available pivot magnitude ≤ pivot tolerance.
//
// Determinism:
//   - Fixed column order and deterministic tie-breaking (first maximal row).
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	u := src.clone() // working copy; reduced in place
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	p, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	var col, r, j, piv int
	var maxAbs, f float64
	for col = 0; col < n; col++ {
		// Partial pivoting: max |U[r,col]| for r in [col, n).
		piv, maxAbs = col, math.Abs(u.data[col*n+col])
		for r = col + 1; r < n; r++ {
			if a := math.Abs(u.data[r*n+col]); a > maxAbs {
				piv, maxAbs = r, a
			}
		}
		if maxAbs <= o.pivotTol {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if piv != col {
			swapRows(u, piv, col)
			swapRows(p, piv, col)
			// L rows carry multipliers only for columns < col; swap that prefix.
			for j = 0; j < col; j++ {
				l.data[piv*n+j], l.data[col*n+j] = l.data[col*n+j], l.data[piv*n+j]
			}
		}

		// Eliminate below the pivot, storing multipliers in L.
		for r = col + 1; r < n; r++ {
			f = u.data[r*n+col] / u.data[col*n+col]
			if f == 0 {
				continue
			}
			l.data[r*n+col] = f
			u.data[r*n+col] = 0
			for j = col + 1; j < n; j++ {
				u.data[r*n+j] -= f * u.data[col*n+j]
			}
		}
	}

	// Unit diagonal of L.
	for r = 0; r < n; r++ {
		l.data[r*n+r] = 1.0
	}

	return &LUResult{L: l, U: u, P: p}, nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *Dense, a, b int) {
	ra, rb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ra+j], m.data[rb+j] = m.data[rb+j], m.data[ra+j]
	}
}

// Det computes the determinant via pivoted Gaussian elimination.
// Unlike LU, a vanishing pivot is not an error here: it means det(A) == 0,
// which is reported as the value 0 with no sentinel.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n³), Space O(n²) for the working copy.
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := src.r
	w := src.clone()
	sign := 1.0
	var col, r, j, piv int
	var maxAbs, f float64
	for col = 0; col < n; col++ {
		piv, maxAbs = col, math.Abs(w.data[col*n+col])
		for r = col + 1; r < n; r++ {
			if a := math.Abs(w.data[r*n+col]); a > maxAbs {
				piv, maxAbs = r, a
			}
		}
		if maxAbs <= o.pivotTol {
			return 0, nil // rank-deficient: determinant vanishes
		}
		if piv != col {
			swapRows(w, piv, col)
			sign = -sign // each row swap flips the sign
		}
		for r = col + 1; r < n; r++ {
			f = w.data[r*n+col] / w.data[col*n+col]
			if f == 0 {
				continue
			}
			for j = col; j < n; j++ {
				w.data[r*n+j] -= f * w.data[col*n+j]
			}
		}
	}

	det := sign
	for r = 0; r < n; r++ {
		det *= w.data[r*n+r]
	}

	return det, nil
}

// Solve finds x with A·x = b using the pivoted LU factors:
// P·A = L·U ⇒ L·(U·x) = P·b, solved by one forward and one backward
// substitution.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape or len(b) != n),
// ErrSingular (from LU).
// Complexity: Time O(n³) dominated by the factorization, Space O(n²).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	lu, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := lu.U.r
	pb := make([]float64, n)
	matVecInto(pb, lu.P, b) // permutation applied to the right-hand side

	y := luForward(lu.L, pb)

	return luBackward(lu.U, y), nil
}

// Inverse computes A⁻¹ by solving against every identity column through the
// shared LU factors: one O(n³) factorization plus n pairs of O(n²)
// triangular solves.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := lu.U.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// A·x = e_col ⇒ L·U·x = P·e_col, and P·e_col is column col of P.
	pb := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			pb[i] = lu.P.data[i*n+col]
		}
		x := luBackward(lu.U, luForward(lu.L, pb))
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// luForward solves L·y = b top-down for unit-lower-triangular L.
// Complexity: O(n²).
func luForward(l *Dense, b []float64) []float64 {
	n := l.r
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum // unit diagonal: no division
	}

	return y
}

// luBackward solves U·x = y bottom-up for upper-triangular U whose diagonal
// was already vetted by the factorization.
// Complexity: O(n²).
func luBackward(u *Dense, y []float64) []float64 {
	n := u.r
	x := make([]float64, n)
	var i, k int
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += u.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[i*n+i]
	}

	return x
}
