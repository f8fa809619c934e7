// SPDX-License-Identifier: MIT

// Package matrix: matrix norms. Frobenius, L1 and L∞ are direct single-pass
// accumulations; the spectral (L2) norm is the largest singular value and
// therefore inherits SVD's cost and its randomized (seedable) nature — the
// most expensive and least deterministic of the four.

package matrix

import "math"

// FrobeniusNorm returns sqrt(Σ a[i,j]²).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	var sum float64
	for _, v := range d.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// L1Norm returns the maximum absolute column sum.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func L1Norm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	colSums := make([]float64, d.c)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			colSums[j] += math.Abs(d.data[i*d.c+j])
		}
	}
	var maxSum float64
	for _, s := range colSums {
		if s > maxSum {
			maxSum = s
		}
	}

	return maxSum, nil
}

// InfinityNorm returns the maximum absolute row sum.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func InfinityNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	var maxSum, rowSum float64
	var i, j int
	for i = 0; i < d.r; i++ {
		rowSum = 0
		for j = 0; j < d.c; j++ {
			rowSum += math.Abs(d.data[i*d.c+j])
		}
		if rowSum > maxSum {
			maxSum = rowSum
		}
	}

	return maxSum, nil
}

// L2Norm returns the spectral norm: the largest singular value, obtained by
// running SVD restricted to the single dominant triplet under the caller's
// iteration budget (WithMaxIterations, WithSeed, WithTolerance pass through).
//
// Errors: ErrNilMatrix.
// Complexity: inherited from SVD with k=1: Time O(m·n² + maxIter·n²).
func L2Norm(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	svdOpts := append([]Option{}, opts...)
	svdOpts = append(svdOpts, WithEigenCount(1))
	res, err := SVD(m, svdOpts...)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return res.S[0], nil
}
