// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "math"

// validatorErrorf is intentionally absent: validators return plain sentinels
// and the kernel facades add the operation tag exactly once.

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → same shape.
// Use for Add/Sub/Hadamard kernels.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare — composite: NotNil → Rows == Cols.
// Use before factorizations, eigen-solving and matrix functions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n elements.
// The nil case reuses ErrNilMatrix ("nil argument"); a wrong length is a
// dimension mismatch. O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix/ErrDimensionMismatch on structural issues,
// ErrNaNInf on a non-finite tolerance, ErrAsymmetry on violation.
// Complexity: O(n²), upper triangle only. Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrNaNInf
	}
	if tol < 0 {
		tol = -tol
	}
	d, err := asDense(m)
	if err != nil {
		return err
	}

	// Deterministic i→j scan of the strict upper triangle; fail fast.
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
