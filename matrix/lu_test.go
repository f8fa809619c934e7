// SPDX-License-Identifier: MIT
// Package matrix_test: pivoted LU, determinant, solve and inverse tests.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ldanchev/numera/matrix"
)

func TestLU_ReconstructsPA(t *testing.T) {
	t.Parallel()

	// Fixture that forces an actual row swap (partial pivoting picks row 2).
	a := MustFromRows(t, [][]float64{
		{0, 5, 22.0 / 3.0},
		{4, 2, 1},
		{2, 7, 9},
	})

	lu, err := matrix.LU(a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}

	pa, err := matrix.Mul(lu.P, a)
	if err != nil {
		t.Fatalf("Mul(P,A): %v", err)
	}
	luProd, err := matrix.Mul(lu.L, lu.U)
	if err != nil {
		t.Fatalf("Mul(L,U): %v", err)
	}
	CompareMatricesApprox(t, pa, luProd, defaultCompareTol)

	// L has a unit diagonal and is lower triangular; U is upper triangular.
	n := a.Rows()
	for i := 0; i < n; i++ {
		if d := MustAt(t, lu.L, i, i); math.Abs(d-1) > defaultCompareTol {
			t.Fatalf("L[%d,%d]: want 1, got %g", i, i, d)
		}
		for j := i + 1; j < n; j++ {
			if v := MustAt(t, lu.L, i, j); v != 0 {
				t.Fatalf("L[%d,%d]: want 0 above diagonal, got %g", i, j, v)
			}
		}
		for j := 0; j < i; j++ {
			if v := MustAt(t, lu.U, i, j); math.Abs(v) > defaultCompareTol {
				t.Fatalf("U[%d,%d]: want ~0 below diagonal, got %g", i, j, v)
			}
		}
	}
}

func TestLU_SingularInput(t *testing.T) {
	t.Parallel()

	// Second row is a multiple of the first: rank 1.
	a := MustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.LU(a)
	if !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("want ErrSingular, got %v", err)
	}
}

func TestLU_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := matrix.LU(MustDense(t, 2, 3))
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestDet_KnownValues(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"2x2", [][]float64{{4, 7}, {2, 6}}, 10},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"swap-heavy", [][]float64{{0, 1}, {1, 0}}, -1},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Det(MustFromRows(t, tc.rows))
			if err != nil {
				t.Fatalf("Det: %v", err)
			}
			if math.Abs(got-tc.want) > defaultCompareTol {
				t.Fatalf("Det: want %g, got %g", tc.want, got)
			}
		})
	}
}

func TestSolve_KnownSystem(t *testing.T) {
	t.Parallel()

	// A·x = b with x = (1, -2): b = (4-14, 2-12) = (-10, -10).
	a := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	x, err := matrix.Solve(a, []float64{-10, -10})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(x[0]-1) > defaultCompareTol || math.Abs(x[1]+2) > defaultCompareTol {
		t.Fatalf("Solve: want [1 -2], got %v", x)
	}
}

func TestSolve_LengthMismatch(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	_, err := matrix.Solve(a, []float64{1})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestInverse_ClosedForm2x2(t *testing.T) {
	t.Parallel()

	// det = 10, adjugate/det gives the exact closed form.
	a := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	CompareApprox(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, defaultCompareTol)
}

func TestInverse_Properties(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}})

	inv, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	// inverse(A)·A ≈ I
	prod, err := matrix.Mul(inv, a)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	AssertApproxIdentity(t, prod, defaultCompareTol)

	// inverse(inverse(A)) ≈ A
	invInv, err := matrix.Inverse(inv)
	if err != nil {
		t.Fatalf("Inverse twice: %v", err)
	}
	CompareMatricesApprox(t, a, invInv, defaultCompareTol)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(MustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	if !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("want ErrSingular, got %v", err)
	}
}
