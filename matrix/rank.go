// SPDX-License-Identifier: MIT

// Package matrix: rank and nullspace via tolerant Gaussian row reduction.
// The reduction shares LU's pivoting pattern (largest remaining magnitude in
// the current column) but reduces all the way to reduced row-echelon form so
// nullspace basis vectors can be read off directly.

package matrix

import "math"

// rowEchelon reduces a copy of d to reduced row-echelon form.
// A column whose best remaining pivot magnitude is ≤ tol contributes no
// pivot (it is a free column). Returns the reduced matrix and the pivot
// column indices in ascending order.
//
// Complexity: Time O(r·c·min(r,c)), Space O(r*c).
func rowEchelon(d *Dense, tol float64) (*Dense, []int) {
	w := d.clone()
	rows, cols := w.r, w.c
	pivots := make([]int, 0, min(rows, cols))

	var row, col, r, j, piv int
	var maxAbs, f float64
	for col = 0; col < cols && row < rows; col++ {
		// Pivot selection, same pattern as LU: max |value| at or below `row`.
		piv, maxAbs = row, math.Abs(w.data[row*cols+col])
		for r = row + 1; r < rows; r++ {
			if a := math.Abs(w.data[r*cols+col]); a > maxAbs {
				piv, maxAbs = r, a
			}
		}
		if maxAbs <= tol {
			continue // free column: no usable pivot
		}
		if piv != row {
			swapRows(w, piv, row)
		}

		// Normalize the pivot row so the pivot becomes exactly 1.
		f = w.data[row*cols+col]
		for j = col; j < cols; j++ {
			w.data[row*cols+j] /= f
		}
		w.data[row*cols+col] = 1

		// Eliminate the pivot column from every other row (full reduction).
		for r = 0; r < rows; r++ {
			if r == row {
				continue
			}
			f = w.data[r*cols+col]
			if f == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				w.data[r*cols+j] -= f * w.data[row*cols+j]
			}
			w.data[r*cols+col] = 0
		}

		pivots = append(pivots, col)
		row++
	}

	return w, pivots
}

// Rank returns the number of pivots found by tolerant row reduction
// (WithPivotTolerance adjusts the threshold, default 1e-10).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r·c·min(r,c)), Space O(r*c).
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	_, pivots := rowEchelon(d, o.pivotTol)

	return len(pivots), nil
}

// Nullspace returns a basis of {x : A·x = 0} as the columns of a fresh
// cols×(cols−rank) matrix. Each free column of the reduced form yields one
// basis vector: its own coordinate set to 1, every pivot coordinate set to
// the negated reduced coefficient in that column.
//
// A full-column-rank matrix has only the trivial nullspace; that case
// returns (nil, nil) — no basis vectors, no error.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r·c·min(r,c)), Space O(r*c).
func Nullspace(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}

	reduced, pivots := rowEchelon(d, o.pivotTol)
	cols := d.c
	freeCount := cols - len(pivots)
	if freeCount == 0 {
		return nil, nil // trivial nullspace
	}

	isPivot := make([]bool, cols)
	for _, pc := range pivots {
		isPivot[pc] = true
	}

	basis, err := NewDense(cols, freeCount)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}

	// One basis column per free column, deterministic ascending order.
	b := 0
	for fc := 0; fc < cols; fc++ {
		if isPivot[fc] {
			continue
		}
		basis.data[fc*freeCount+b] = 1
		// Pivot row i constrains pivot column pivots[i]:
		// x[pivots[i]] = -reduced[i][fc] when x[fc] = 1.
		for i, pc := range pivots {
			basis.data[pc*freeCount+b] = -reduced.data[i*cols+fc]
		}
		b++
	}

	return basis, nil
}
