// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.
//   - Keep all data finite and well-formed so numeric policy never interferes.

package matrix_test

import (
	"math"
	"testing"

	"github.com/ldanchev/numera/matrix"
)

// defaultCompareTol is the absolute tolerance for approximate comparisons of
// decomposition products; iterative-solver tests declare their own, looser
// tolerances where appropriate.
const defaultCompareTol = 1e-6

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels through the materializing (asDense copy) path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense fixture from row data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt reads one element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes one element or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// CompareApprox asserts got ≈ want elementwise within tol (absolute).
func CompareApprox(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	for i := range want {
		for j := range want[i] {
			if g := MustAt(t, got, i, j); math.Abs(g-want[i][j]) > tol {
				t.Fatalf("element [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], g, tol)
			}
		}
	}
}

// CompareMatricesApprox asserts a ≈ b elementwise within tol (absolute).
func CompareMatricesApprox(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("element [%d,%d]: %g vs %g (tol %g)", i, j, av, bv, tol)
			}
		}
	}
}

// AssertApproxIdentity asserts m ≈ I within tol.
func AssertApproxIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	if m.Rows() != m.Cols() {
		t.Fatalf("identity check on non-square %dx%d", m.Rows(), m.Cols())
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if g := MustAt(t, m, i, j); math.Abs(g-want) > tol {
				t.Fatalf("identity element [%d,%d]: got %g (tol %g)", i, j, g, tol)
			}
		}
	}
}
