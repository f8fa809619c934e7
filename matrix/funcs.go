// SPDX-License-Identifier: MIT

// Package matrix: matrix functions — exponential, logarithm, square root and
// powers.
//
// Exp uses scaling-and-squaring around a fixed-term Taylor series. Log uses
// the log(I+X) series near the identity and falls back to an
// eigen-decomposition reconstruction elsewhere. Sqrt runs the Denman–Beavers
// fixed-point iteration (inverse-hungry, hence expensive and sensitive to
// ill-conditioning). Pow does exact binary exponentiation for non-negative
// integer exponents and the eigen reconstruction V·Dᵖ·V⁻¹ otherwise.
//
// Reconstruction paths assume a real-diagonalizable input; eigenvalues
// outside the real domain of the requested function fail fast with
// ErrComplexSpectrum instead of silently producing NaN.

package matrix

import "math"

// expScaleThreshold is the infinity-norm above which Exp rescales the input
// before the series evaluation (scaling-and-squaring).
const expScaleThreshold = 0.5

// logTaylorRadius bounds ‖A−I‖∞ for the series path of Log; beyond it the
// series diverges and the eigen path takes over.
const logTaylorRadius = 0.5

// Exp computes the matrix exponential by scaling-and-squaring.
//
// Implementation:
//   - Stage 1: pick s = ceil(log2(‖A‖∞)) when the norm exceeds 0.5, scale A
//     by 2^-s so the series converges fast.
//   - Stage 2: evaluate I + A + A²/2! + … for WithTaylorTerms terms.
//   - Stage 3: square the result s times to undo the scaling.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O((terms+s)·n³), Space O(n²).
func Exp(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	n := a.r

	nrm, err := InfinityNorm(a)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	s := 0
	if nrm > expScaleThreshold {
		if s = int(math.Ceil(math.Log2(nrm))); s < 0 {
			s = 0
		}
	}
	x, err := Scale(a, math.Pow(2, -float64(s)))
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}

	// Taylor series: result = I, term = I, term ← term·X/i.
	result, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	term, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	for i := 1; i <= o.taylorTerms; i++ {
		next, merr := Mul(term, x)
		if merr != nil {
			return nil, matrixErrorf(opExp, merr)
		}
		if term, err = Scale(next, 1/float64(i)); err != nil {
			return nil, matrixErrorf(opExp, err)
		}
		if result, err = Add(result, term); err != nil {
			return nil, matrixErrorf(opExp, err)
		}
	}

	// Undo the scaling: square s times.
	for i := 0; i < s; i++ {
		if result, err = Mul(result, result); err != nil {
			return nil, matrixErrorf(opExp, err)
		}
	}

	return result, nil
}

// Log computes the matrix logarithm.
//
// Near the identity (‖A−I‖∞ < 0.5) the Taylor series of log(I+X) is used.
// Otherwise the general path runs the QR algorithm and reconstructs
// V·diag(log λ)·V⁻¹, which requires a real-diagonalizable input with a
// strictly positive spectrum.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrComplexSpectrum (eigenvalue
// ≤ 0 on the general path), ErrSingular (non-invertible eigenvector matrix).
// Complexity: series path O(terms·n³); eigen path O(maxIter·n³).
func Log(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	n := a.r

	eye, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	x, err := Sub(a, eye)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	radius, err := InfinityNorm(x)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	if radius < logTaylorRadius {
		// log(I+X) = X − X²/2 + X³/3 − …
		result, nerr := NewDense(n, n)
		if nerr != nil {
			return nil, matrixErrorf(opLog, nerr)
		}
		power := x.clone()
		sign := 1.0
		for k := 1; k <= o.taylorTerms; k++ {
			term, serr := Scale(power, sign/float64(k))
			if serr != nil {
				return nil, matrixErrorf(opLog, serr)
			}
			if result, err = Add(result, term); err != nil {
				return nil, matrixErrorf(opLog, err)
			}
			if power, err = Mul(power, x); err != nil {
				return nil, matrixErrorf(opLog, err)
			}
			sign = -sign
		}

		return result, nil
	}

	// General path: eigen-decomposition, log on the spectrum, reconstruct.
	eig, err := QRAlgorithm(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	logged := make([]float64, n)
	for i, lambda := range eig.Values {
		if lambda <= 0 {
			return nil, matrixErrorf(opLog, ErrComplexSpectrum)
		}
		logged[i] = math.Log(lambda)
	}
	result, err := reconstruct(eig.Vectors, logged, opts)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	return result, nil
}

// Sqrt computes the principal matrix square root via the Denman–Beavers
// fixed-point iteration: Y₀=A, Z₀=I, then Y ← ½(Y+Z⁻¹), Z ← ½(Z+Y⁻¹).
// Y converges to √A (and Z to √A⁻¹). Each step inverts two matrices, so the
// routine is expensive and sensitive to ill-conditioning.
//
// Termination: ‖ΔY‖_F < tol (Converged=true) or the iteration cap
// (Converged=false; the best-effort Y is still returned).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (an iterate became
// non-invertible).
// Complexity: Time O(maxIter·n³), Space O(n²).
func Sqrt(m Matrix, opts ...Option) (*Dense, Convergence, error) {
	conv := Convergence{}
	if err := ValidateSquare(m); err != nil {
		return nil, conv, matrixErrorf(opSqrt, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, conv, matrixErrorf(opSqrt, err)
	}

	y := a.clone()
	z, err := Identity(a.r)
	if err != nil {
		return nil, conv, matrixErrorf(opSqrt, err)
	}

	for it := 0; it < o.maxIter; it++ {
		conv.Iterations++

		zInv, ierr := Inverse(z, opts...)
		if ierr != nil {
			return nil, conv, matrixErrorf(opSqrt, ierr)
		}
		yInv, ierr := Inverse(y, opts...)
		if ierr != nil {
			return nil, conv, matrixErrorf(opSqrt, ierr)
		}

		ySum, serr := Add(y, zInv)
		if serr != nil {
			return nil, conv, matrixErrorf(opSqrt, serr)
		}
		yNext, serr := Scale(ySum, 0.5)
		if serr != nil {
			return nil, conv, matrixErrorf(opSqrt, serr)
		}
		zSum, serr := Add(z, yInv)
		if serr != nil {
			return nil, conv, matrixErrorf(opSqrt, serr)
		}
		zNext, serr := Scale(zSum, 0.5)
		if serr != nil {
			return nil, conv, matrixErrorf(opSqrt, serr)
		}

		diff, derr := Sub(yNext, y)
		if derr != nil {
			return nil, conv, matrixErrorf(opSqrt, derr)
		}
		change, nerr := FrobeniusNorm(diff)
		if nerr != nil {
			return nil, conv, matrixErrorf(opSqrt, nerr)
		}

		y, z = yNext, zNext
		if change < o.tol {
			conv.Converged = true

			break
		}
	}

	return y, conv, nil
}

// Pow raises a square matrix to the power p.
//
// Non-negative integer p uses binary exponentiation (repeated squaring):
// exact up to floating-point multiply accumulation, Pow(A, 0) == I.
// Negative or fractional p goes through the QR-algorithm eigen path:
// A^p = V·diag(λ^p)·V⁻¹, which assumes a real-diagonalizable matrix. A
// negative eigenvalue under a fractional exponent (or a vanishing eigenvalue
// under a negative one) cannot be reconstructed over the reals and fails
// fast.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrComplexSpectrum,
// ErrSingular (λ ≈ 0 with p < 0, or non-invertible eigenvector matrix).
// Complexity: integer path O(log p·n³); eigen path O(maxIter·n³).
func Pow(m Matrix, p float64, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	if p >= 0 && p == math.Trunc(p) && !math.IsInf(p, 0) {
		return powInt(a, int(p))
	}

	fractional := p != math.Trunc(p)
	eig, err := QRAlgorithm(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	raised := make([]float64, len(eig.Values))
	for i, lambda := range eig.Values {
		switch {
		case fractional && lambda < 0:
			return nil, matrixErrorf(opPow, ErrComplexSpectrum)
		case p < 0 && math.Abs(lambda) <= floatTiny:
			return nil, matrixErrorf(opPow, ErrSingular)
		}
		raised[i] = math.Pow(lambda, p)
	}
	result, err := reconstruct(eig.Vectors, raised, opts)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	return result, nil
}

// powInt computes A^k for k ≥ 0 by repeated squaring. O(log k) multiplies.
func powInt(a *Dense, k int) (*Dense, error) {
	result, err := Identity(a.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := a.clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k == 0 {
			break // skip the final, unused squaring
		}
		if base, err = Mul(base, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return result, nil
}

// reconstruct forms V·diag(d)·V⁻¹ — the shared tail of the eigen-based
// matrix-function paths.
func reconstruct(v *Dense, d []float64, opts []Option) (*Dense, error) {
	n := v.r
	diag, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, val := range d {
		diag.data[i*n+i] = val
	}
	vInv, err := Inverse(v, opts...)
	if err != nil {
		return nil, err
	}
	vd, err := Mul(v, diag)
	if err != nil {
		return nil, err
	}

	return Mul(vd, vInv)
}
