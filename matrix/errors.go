// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub/Hadamard with different shapes, Mul where a.Cols != b.Rows,
	// a vector of the wrong length, or a non-square input where a square
	// matrix is required (LU, Cholesky, eigen-solving, matrix functions).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a pivot magnitude falls below the configured
	// tolerance during elimination-based factorization or inversion. Raising a
	// typed error here replaces the silent Inf/NaN propagation of naive
	// Gaussian elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal term to be
	// square-rooted is not strictly positive. Symmetry itself is assumed, not
	// checked; the diagonal test is the (lazy) positive-definiteness gate.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive-definite")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the provided tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrComplexSpectrum is returned by eigen-reconstruction paths (fractional
	// or negative matrix powers, general matrix logarithm) when a real
	// reconstruction is impossible: a negative eigenvalue under a fractional
	// exponent, or a non-positive eigenvalue under log. Failing fast replaces
	// the silent NaN propagation of taking real powers of negative numbers.
	ErrComplexSpectrum = errors.New("matrix: eigenvalues outside the real domain of the requested function")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (e.g., a non-finite tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
