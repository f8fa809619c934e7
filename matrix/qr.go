// SPDX-License-Identifier: MIT

// Package matrix: QR factorizations.
//
// Two variants are provided:
//   - QRGramSchmidt: classical (not modified) Gram-Schmidt on any m×n input.
//     Numerically less stable than the modified variant for ill-conditioned
//     matrices — an accepted precision caveat, not a bug. Rank deficiency is
//     signaled structurally: a linearly dependent column yields an all-zero
//     column of Q, never an error.
//   - QRHouseholder: reflector-based factorization for square input, the
//     numerically stabler choice when orthogonality of Q matters.

package matrix

import "math"

// QRResult bundles the factors of A = Q·R.
type QRResult struct {
	Q *Dense // orthonormal columns (zero columns mark rank deficiency in Gram-Schmidt)
	R *Dense // upper triangular
}

// QRGramSchmidt factors an m×n matrix as A = Q·R by classical Gram-Schmidt
// over the columns of A.
//
// Implementation:
//   - Stage 1: validate non-nil input; allocate Q (m×n) and R (n×n).
//   - Stage 2: for column j, record projection coefficients onto the
//     previously produced orthonormal columns in R[k,j], subtract the
//     projections, then normalize the residual into Q[:,j].
//
// Behavior highlights:
//   - A residual norm below the pivot tolerance means column j is linearly
//     dependent on columns 0..j-1: Q[:,j] stays all zeros and R[j,j] is 0.
//     Callers must treat a zero column as a rank-deficiency signal.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(m·n²), Space O(m·n).
func QRGramSchmidt(m Matrix, opts ...Option) (*QRResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	rows, cols := a.r, a.c
	q, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	r, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	v := make([]float64, rows) // residual workspace for the current column
	var i, j, k int
	var coef, norm float64
	for j = 0; j < cols; j++ {
		// Start from the original column j of A (classical variant: all
		// projection coefficients are taken against the unmodified column).
		for i = 0; i < rows; i++ {
			v[i] = a.data[i*cols+j]
		}
		for k = 0; k < j; k++ {
			coef = 0
			for i = 0; i < rows; i++ {
				coef += q.data[i*cols+k] * a.data[i*cols+j]
			}
			r.data[k*cols+j] = coef
			for i = 0; i < rows; i++ {
				v[i] -= coef * q.data[i*cols+k]
			}
		}

		norm = 0
		for i = 0; i < rows; i++ {
			norm += v[i] * v[i]
		}
		norm = math.Sqrt(norm)
		if norm < o.pivotTol {
			continue // dependent column: Q[:,j] stays zero, R[j,j] stays zero
		}
		r.data[j*cols+j] = norm
		for i = 0; i < rows; i++ {
			q.data[i*cols+j] = v[i] / norm
		}
	}

	return &QRResult{Q: q, R: r}, nil
}

// QRHouseholder factors a square matrix as A = Q·R using Householder
// reflections: for each column a reflector annihilates the entries below the
// diagonal of the workspace (forming R) while being accumulated into Q.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n³), Space O(n²).
func QRHouseholder(m Matrix) (*QRResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	n := src.r
	a := src.clone() // reduced toward R in place
	acc, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	v := make([]float64, n) // Householder vector
	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	for k = 0; k < n; k++ {
		// Column norm of A[k:,k]; a zero column needs no reflection.
		norm = 0
		for i = k; i < n; i++ {
			norm += a.data[i*n+k] * a.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}

		// Reflector v = A[k:,k] - alpha·e_k with alpha = -sign(A[k,k])·norm.
		alpha = -math.Copysign(norm, a.data[k*n+k])
		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = a.data[i*n+k]
		}
		v[k] -= alpha

		beta = 0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue // degenerate reflector; nothing to apply
		}
		tau = 2.0 / beta

		// Apply H = I - tau·v·vᵀ to the workspace (columns k..n-1 of R).
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * a.data[i*n+j]
			}
			for i = k; i < n; i++ {
				a.data[i*n+j] -= tau * v[i] * sum
			}
		}
		// Accumulate H into acc = H_{n-1}·…·H_0.
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * acc.data[i*n+j]
			}
			for i = k; i < n; i++ {
				acc.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	// acc holds the product of reflectors, so A = accᵀ·R: expose Q = accᵀ.
	q, err := Transpose(acc)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	return &QRResult{Q: q, R: a}, nil
}
