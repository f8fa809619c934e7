// SPDX-License-Identifier: MIT
// Package matrix_test: eigen engine tests — power iteration, the QR algorithm
// and the Jacobi symmetric solver.

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldanchev/numera/matrix"
)

// eigenTol is looser than defaultCompareTol: iterative eigen solvers stop at
// DefaultTolerance on the eigenvalue estimate, not on the residual.
const eigenTol = 1e-6

func TestPowerIteration_DominantPair(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 0}, {0, 1}})

	res, err := matrix.PowerIteration(a, matrix.WithEigenCount(1))
	require.NoError(t, err)
	require.Len(t, res.Values, 1)
	assert.True(t, res.Converged)
	assert.InDelta(t, 2.0, res.Values[0], eigenTol)

	// Eigenvector for λ=2 is ±e₀.
	assert.InDelta(t, 1.0, math.Abs(MustAt(t, res.Vectors, 0, 0)), eigenTol)
	assert.InDelta(t, 0.0, MustAt(t, res.Vectors, 1, 0), eigenTol)
}

func TestPowerIteration_DeflationRecoversSpectrum(t *testing.T) {
	t.Parallel()

	// Symmetric with well-separated spectrum {5, 2, 1}.
	a := MustFromRows(t, [][]float64{{5, 0, 0}, {0, 2, 0}, {0, 0, 1}})

	res, err := matrix.PowerIteration(a)
	require.NoError(t, err)
	require.Len(t, res.Values, 3)
	assert.True(t, res.Converged)

	got := append([]float64(nil), res.Values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(got)))
	assert.InDelta(t, 5.0, got[0], eigenTol)
	assert.InDelta(t, 2.0, got[1], eigenTol)
	assert.InDelta(t, 1.0, got[2], eigenTol)

	// Each recovered pair satisfies A·v ≈ λ·v.
	for e, lambda := range res.Values {
		v := make([]float64, 3)
		for i := range v {
			v[i] = MustAt(t, res.Vectors, i, e)
		}
		av, merr := matrix.MatVec(a, v)
		require.NoError(t, merr)
		for i := range v {
			assert.InDelta(t, lambda*v[i], av[i], eigenTol, "pair %d component %d", e, i)
		}
	}
}

func TestPowerIteration_ResidualMeetsTolerance(t *testing.T) {
	t.Parallel()

	// The stop rule bounds ‖A·v − λ·v‖∞ itself, so a converged result must
	// satisfy the eigenpair equation far tighter than the loose eigenTol —
	// including the eigenvector components, not just the eigenvalue.
	a := MustFromRows(t, [][]float64{{2, 0}, {0, 1}})

	res, err := matrix.PowerIteration(a, matrix.WithEigenCount(1))
	require.NoError(t, err)
	require.True(t, res.Converged)

	v := make([]float64, 2)
	for i := range v {
		v[i] = MustAt(t, res.Vectors, i, 0)
	}
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	for i := range v {
		assert.InDelta(t, res.Values[0]*v[i], av[i], 1e-8, "residual component %d", i)
	}
	assert.InDelta(t, 1.0, math.Abs(v[0]), 1e-8)
	assert.InDelta(t, 0.0, v[1], 1e-8)
}

func TestPowerIteration_SeedDeterminism(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{4, 1}, {1, 3}})

	first, err := matrix.PowerIteration(a, matrix.WithSeed(42))
	require.NoError(t, err)
	second, err := matrix.PowerIteration(a, matrix.WithSeed(42))
	require.NoError(t, err)

	// Same seed, same input: bit-identical values, vectors and iteration count.
	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Iterations, second.Iterations)
	CompareMatricesApprox(t, first.Vectors, second.Vectors, 0)
}

func TestPowerIteration_ZeroMatrix(t *testing.T) {
	t.Parallel()

	res, err := matrix.PowerIteration(MustDense(t, 3, 3))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	for _, v := range res.Values {
		assert.Zero(t, v)
	}
}

func TestQRAlgorithm_DiagonalInput(t *testing.T) {
	t.Parallel()

	// Already diagonal: the off-diagonal test passes before any iteration.
	res, err := matrix.QRAlgorithm(MustFromRows(t, [][]float64{{2, 0}, {0, 3}}))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
	assert.ElementsMatch(t, []float64{2, 3}, res.Values)
}

func TestQRAlgorithm_SymmetricSpectrum(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenvalues 3 and 1.
	res, err := matrix.QRAlgorithm(MustFromRows(t, [][]float64{{2, 1}, {1, 2}}))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Positive(t, res.Iterations)

	got := append([]float64(nil), res.Values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(got)))
	assert.InDelta(t, 3.0, got[0], eigenTol)
	assert.InDelta(t, 1.0, got[1], eigenTol)

	// Similarity preserved: A·V ≈ V·diag(Values).
	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	av, err := matrix.Mul(a, res.Vectors)
	require.NoError(t, err)
	for j, lambda := range res.Values {
		for i := 0; i < 2; i++ {
			assert.InDelta(t, lambda*MustAt(t, res.Vectors, i, j), MustAt(t, av, i, j), eigenTol)
		}
	}
}

func TestQRAlgorithm_ComplexPairDoesNotConverge(t *testing.T) {
	t.Parallel()

	// A rotation matrix has eigenvalues e^{±iθ}: the 2×2 block never dies.
	rot := MustFromRows(t, [][]float64{{0, -1}, {1, 0}})

	res, err := matrix.QRAlgorithm(rot, matrix.WithMaxIterations(50))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 50, res.Iterations)
}

func TestEigenSymmetric_KnownSpectrum(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	res, err := matrix.EigenSymmetric(a)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	got := append([]float64(nil), res.Values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(got)))
	assert.InDelta(t, 3.0, got[0], eigenTol)
	assert.InDelta(t, 1.0, got[1], eigenTol)

	// Jacobi accumulates orthogonal rotations: VᵀV ≈ I.
	vt, err := matrix.Transpose(res.Vectors)
	require.NoError(t, err)
	vtv, err := matrix.Mul(vt, res.Vectors)
	require.NoError(t, err)
	AssertApproxIdentity(t, vtv, eigenTol)
}

func TestEigenSymmetric_RejectsAsymmetry(t *testing.T) {
	t.Parallel()

	_, err := matrix.EigenSymmetric(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigenSymmetric_OneByOne(t *testing.T) {
	t.Parallel()

	res, err := matrix.EigenSymmetric(MustFromRows(t, [][]float64{{7}}))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, []float64{7}, res.Values)
}

func TestConvergence_CapReported(t *testing.T) {
	t.Parallel()

	// One iteration is never enough for a non-diagonal matrix; the cap must
	// surface as Converged == false, not as an error.
	res, err := matrix.QRAlgorithm(
		MustFromRows(t, [][]float64{{2, 1}, {1, 2}}),
		matrix.WithMaxIterations(1),
	)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
}
