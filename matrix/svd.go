// SPDX-License-Identifier: MIT

// Package matrix: singular value decomposition built on the eigen engine.
//
// AᵀA is always symmetric positive-semidefinite, so its eigenpairs — found by
// deflating power iteration — give the right singular vectors V and squared
// singular values. Quality and cost are inherited wholesale from power
// iteration: O(n³)-ish per pair, randomized starts (seedable), and a
// Convergence report instead of a guaranteed factorization.

package matrix

import (
	"math"
	"sort"
)

// SVDResult bundles A ≈ U·diag(S)·Vᵀ.
// S is ordered non-increasing; columns of U and V follow the same order.
// A zero column of U marks a singular value too small to recover the left
// vector from (below the internal threshold).
type SVDResult struct {
	U *Dense    // left singular vectors, m×k
	S []float64 // singular values, non-negative, non-increasing, length k
	V *Dense    // right singular vectors, n×k
	Convergence
}

// SVD computes the k = min(m,n) dominant singular triplets (fewer when
// WithEigenCount asks for fewer).
//
// Implementation:
//   - Stage 1: validate; form AᵀA (n×n, symmetric PSD).
//   - Stage 2: deflating power iteration extracts k eigenpairs of AᵀA.
//   - Stage 3: sort pairs by decreasing eigenvalue; S = sqrt(max(0, λ))
//     (tiny negative λ is iteration noise, clamped to 0); recover
//     U[:,i] = A·V[:,i] / S[i] when S[i] is above threshold, else leave the
//     column zero.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(m·n² + k·maxIter·n²), Space O(n²).
func SVD(m Matrix, opts ...Option) (*SVDResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	rows, cols := a.r, a.c
	k := rows
	if cols < k {
		k = cols
	}
	if o.eigenCount > 0 && o.eigenCount < k {
		k = o.eigenCount
	}

	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	ata, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	mulInto(ata, at, a)

	lambdas, vvecs, conv, err := powerIterate(ata, k, &o)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	// Power iteration orders pairs only approximately; sort exactly.
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return lambdas[order[x]] > lambdas[order[y]] })

	s := make([]float64, k)
	v, err := NewDense(cols, k)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	u, err := NewDense(rows, k)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	av := make([]float64, rows)
	vcol := make([]float64, cols)
	var i, j, src int
	for j = 0; j < k; j++ {
		src = order[j]
		s[j] = math.Sqrt(math.Max(0, lambdas[src]))
		for i = 0; i < cols; i++ {
			vcol[i] = vvecs.data[i*k+src]
			v.data[i*k+j] = vcol[i]
		}
		if s[j] <= floatTiny {
			continue // left vector unrecoverable: U column stays zero
		}
		matVecInto(av, a, vcol)
		for i = 0; i < rows; i++ {
			u.data[i*k+j] = av[i] / s[j]
		}
	}

	return &SVDResult{U: u, S: s, V: v, Convergence: conv}, nil
}
