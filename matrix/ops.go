// SPDX-License-Identifier: MIT

// Package matrix: element-wise and multiplicative kernels.
// All functions perform strict fail-fast validation via the central
// validators, allocate exactly one fresh result, and never mutate or alias
// their inputs. Foreign Matrix implementations are materialized into a Dense
// working view once per call (asDense), after which every kernel runs a
// single flat-slice path with deterministic loop order.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opDet       = "Det"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opQR        = "QR"
	opCholesky  = "Cholesky"
	opPowerIter = "PowerIteration"
	opQRAlgo    = "QRAlgorithm"
	opJacobi    = "EigenSymmetric"
	opSVD       = "SVD"
	opExp       = "Exp"
	opLog       = "Log"
	opSqrt      = "Sqrt"
	opPow       = "Pow"
	opNorm      = "Norm"
	opRank      = "Rank"
	opNullspace = "Nullspace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers keep errors.Is/As matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation/allocation for Add and Sub.
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, tag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf in alpha propagate; the input is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] = d.data[idx] * alpha
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) into a fresh Dense.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] * db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Row-major i→k→j loop order with a zero-skip on A[i,k]: deterministic,
// cache-friendly, and free multiplications are avoided on sparse-ish rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulInto(res, da, db)

	return res, nil
}

// mulInto accumulates a×b into the zeroed res. Shapes are the caller's
// responsibility; internal hot path shared by Mul and the solvers.
func mulInto(res, a, b *Dense) {
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	matVecInto(y, d, x)

	return y, nil
}

// matVecInto writes m*x into y. Lengths are the caller's responsibility;
// internal hot path shared by MatVec and the eigen solvers.
func matVecInto(y []float64, m *Dense, x []float64) {
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}
}
