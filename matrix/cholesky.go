// SPDX-License-Identifier: MIT

// Package matrix: Cholesky factorization for symmetric positive-definite
// input. Symmetry is assumed, not checked: only the lower triangle of A is
// read. Positive definiteness is verified lazily through the diagonal terms,
// which is exactly the set of values the algorithm must square-root anyway.

package matrix

import "math"

// Cholesky computes the lower-triangular L with A = L·Lᵀ.
//
// Implementation (standard recursive formula, column by column):
//   - diagonal:     L[j,j] = sqrt(A[j,j] − Σ_{k<j} L[j,k]²)
//   - off-diagonal: L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·L[j,k]) / L[j,j]
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrNotPositiveDefinite when a diagonal term to be square-rooted is ≤ 0
//     (or non-finite, which indicates the same structural failure).
//
// Complexity: Time O(n³), Space O(n²).
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = a.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				// Lazy SPD gate: the term under the square root must be
				// strictly positive for a positive-definite matrix.
				if sum <= 0 || math.IsNaN(sum) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(sum)
			} else {
				l.data[i*n+j] = sum / l.data[j*n+j]
			}
		}
	}

	return l, nil
}
