// SPDX-License-Identifier: MIT

// Package matrix: the eigen engine.
//
// Three independently invocable solvers share the EigenResult shape:
//
//   - PowerIteration — randomized start, Rayleigh-quotient estimates and
//     deflation; finds eigenpairs one at a time, approximately in decreasing
//     magnitude order. Reliable chiefly for symmetric matrices with
//     well-separated eigenvalues.
//   - QRAlgorithm — the basic (non-shifted, non-Schur) QR iteration. Only
//     real-diagonalizable input converges to diagonal form; matrices with
//     complex-conjugate eigenvalue pairs never pass the off-diagonal test and
//     surface as Converged == false.
//   - EigenSymmetric — Jacobi rotations for symmetric input; the stablest of
//     the three when symmetry holds, and the only one that validates it.
//
// Every solver reports Iterations and Converged; exhausting the iteration cap
// is a reported fact, never an error.

package matrix

import "math"

// Convergence reports how an iterative solver terminated.
// Iterations counts every pass actually executed; Converged is false when the
// iteration cap was reached before the tolerance check passed.
type Convergence struct {
	Iterations int
	Converged  bool
}

// EigenResult carries eigenvalues and the matrix whose column i is the
// eigenvector for Values[i].
type EigenResult struct {
	Values  []float64
	Vectors *Dense
	Convergence
}

// PowerIteration extracts the k dominant eigenpairs (default: all n) by
// repeated multiplication, Rayleigh-quotient estimation and deflation.
//
// Implementation:
//   - Stage 1: validate square input; resolve options and the RNG.
//   - Stage 2: per eigenpair — start from a random unit vector, iterate
//     v ← A·v / ‖A·v‖ with λ = vᵀ·A·v, stop when the eigenpair residual
//     ‖A·v − λ·v‖∞ < tol or the cap is hit; then deflate A ← A − λ·v·vᵀ and
//     continue with the next pair.
//
// Behavior highlights:
//   - The start vectors come from the injectable RNG (WithSeed / WithRNG);
//     under the default fixed seed, results are reproducible run to run.
//   - Ordering of Values is only approximately by decreasing magnitude.
//   - A working copy deflated to (near) zero yields eigenvalue 0 immediately.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(k·maxIter·n²), Space O(n²).
func PowerIteration(m Matrix, opts ...Option) (*EigenResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPowerIter, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPowerIter, err)
	}

	k := o.eigenCount
	if k == 0 || k > a.r {
		k = a.r
	}
	values, vectors, conv, err := powerIterate(a, k, &o)
	if err != nil {
		return nil, matrixErrorf(opPowerIter, err)
	}

	return &EigenResult{Values: values, Vectors: vectors, Convergence: conv}, nil
}

// powerIterate is the deflating power-iteration core shared by
// PowerIteration and SVD. a is cloned, never mutated.
func powerIterate(a *Dense, k int, o *options) ([]float64, *Dense, Convergence, error) {
	n := a.r
	w := a.clone() // deflated working copy
	vectors, err := NewDense(n, k)
	if err != nil {
		return nil, nil, Convergence{}, err
	}
	values := make([]float64, k)
	rng := o.solverRNG()

	v := make([]float64, n) // current eigenvector estimate
	y := make([]float64, n) // A·v workspace
	conv := Convergence{Converged: true}

	var e, it, i, j int
	var lambda, norm, resid float64
	for e = 0; e < k; e++ {
		randomUnitVector(v, rng)
		lambda = 0
		converged := false
		for it = 0; it < o.maxIter; it++ {
			conv.Iterations++
			matVecInto(y, w, v)

			// Rayleigh quotient vᵀ·A·v with the pre-multiplication v (unit norm).
			lambda = 0
			for i = 0; i < n; i++ {
				lambda += v[i] * y[i]
			}

			// Stop on the eigenpair residual ‖A·v − λ·v‖∞, read off the
			// already-computed y. On symmetric input λ converges twice as fast
			// as v, so a |Δλ| test alone would leave the vector short of tol.
			resid = 0
			for i = 0; i < n; i++ {
				if r := math.Abs(y[i] - lambda*v[i]); r > resid {
					resid = r
				}
			}
			if resid < o.tol {
				converged = true

				break
			}

			norm = 0
			for i = 0; i < n; i++ {
				norm += y[i] * y[i]
			}
			norm = math.Sqrt(norm)
			if norm < floatTiny {
				// The deflated operator annihilates v: the remaining
				// eigenvalue along this direction is zero.
				lambda, converged = 0, true

				break
			}
			for i = 0; i < n; i++ {
				v[i] = y[i] / norm
			}
		}
		if !converged {
			conv.Converged = false
		}

		values[e] = lambda
		for i = 0; i < n; i++ {
			vectors.data[i*k+e] = v[i]
		}
		// Deflation: remove the found pair's contribution.
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w.data[i*n+j] -= lambda * v[i] * v[j]
			}
		}
	}

	return values, vectors, conv, nil
}

// QRAlgorithm iterates A ← R·Q with Q,R from the Gram-Schmidt factorization,
// accumulating V ← V·Q, until the sum of absolute off-diagonal entries drops
// below the tolerance or the iteration cap is hit. Eigenvalues are read off
// the final diagonal; column i of Vectors approximates the eigenvector for
// Values[i].
//
// Restriction: valid for real-diagonalizable input only. Complex-conjugate
// eigenvalue pairs keep a 2×2 block alive on the off-diagonal, so such input
// returns Converged == false and a numerically meaningless diagonal for the
// affected pairs. Real Schur-form handling of those blocks is out of scope.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(maxIter·n³), Space O(n²).
func QRAlgorithm(m Matrix, opts ...Option) (*EigenResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opQRAlgo, err)
	}
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opQRAlgo, err)
	}

	n := src.r
	a := src.clone()
	vecs, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opQRAlgo, err)
	}

	conv := Convergence{}
	var it, i, j int
	var off float64
	for it = 0; it < o.maxIter; it++ {
		// Off-diagonal mass: the convergence measure of the basic QR iteration.
		off = 0
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i != j {
					off += math.Abs(a.data[i*n+j])
				}
			}
		}
		if off < o.tol {
			conv.Converged = true

			break
		}
		conv.Iterations++

		qr, qerr := QRGramSchmidt(a, WithPivotTolerance(o.pivotTol))
		if qerr != nil {
			return nil, matrixErrorf(opQRAlgo, qerr)
		}

		// A ← R·Q (similarity transform), V ← V·Q (eigenvector tracking).
		next, nerr := NewDense(n, n)
		if nerr != nil {
			return nil, matrixErrorf(opQRAlgo, nerr)
		}
		mulInto(next, qr.R, qr.Q)
		a = next

		rotated, rerr := NewDense(n, n)
		if rerr != nil {
			return nil, matrixErrorf(opQRAlgo, rerr)
		}
		mulInto(rotated, vecs, qr.Q)
		vecs = rotated
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a.data[i*n+i]
	}

	return &EigenResult{Values: values, Vectors: vecs, Convergence: conv}, nil
}

// EigenSymmetric diagonalizes a symmetric matrix by Jacobi rotations,
// repeatedly zeroing the largest off-diagonal entry. It validates symmetry
// up front (the only eigen solver that does) and shares the EigenResult
// contract: exhausting the cap reports Converged == false, not an error.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf
// (non-finite tolerance).
// Complexity: Time O(maxIter·n²) pivot scans + O(n) per rotation, Space O(n²).
func EigenSymmetric(m Matrix, opts ...Option) (*EigenResult, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.tol); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}

	n := src.r
	a := src.clone()
	vecs, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}

	conv := Convergence{}
	var it, i, j, p, q int
	var maxOff, apq, app, aqq float64
	var theta, t, c, s float64
	var aip, aiq, vip, viq float64
	for it = 0; it < o.maxIter; it++ {
		// Pivot scan: largest |A[p,q]| above the diagonal, fixed i→j order.
		maxOff, p, q = 0, 0, 1
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < o.tol {
			conv.Converged = true

			break
		}
		conv.Iterations++

		// Rotation parameters annihilating A[p,q].
		app, aqq, apq = a.data[p*n+p], a.data[q*n+q], a.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation symmetrically to A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+q]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a.data[i*n+q], a.data[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		// Accumulate the rotation into the eigenvector matrix.
		for i = 0; i < n; i++ {
			vip, viq = vecs.data[i*n+p], vecs.data[i*n+q]
			vecs.data[i*n+p] = c*vip - s*viq
			vecs.data[i*n+q] = s*vip + c*viq
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a.data[i*n+i]
	}

	return &EigenResult{Values: values, Vectors: vecs, Convergence: conv}, nil
}
