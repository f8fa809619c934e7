// Package matrix implements dense real linear algebra on a row-major Dense
// type: arithmetic kernels, factorizations, an eigen engine, SVD, matrix
// functions, norms and rank analysis.
//
// 🚀 What is matrix?
//
//	A single-package numerical engine built on one flat []float64 layout:
//	  • Kernels: Add, Sub, Mul, Scale, Hadamard, Transpose, MatVec
//	  • Factorizations: LU (partial pivoting, P·A = L·U), QR (classical
//	    Gram-Schmidt and Householder), Cholesky (A = L·Lᵀ)
//	  • Eigen engine: PowerIteration (deflating, randomized), QRAlgorithm
//	    (real spectra), EigenSymmetric (Jacobi rotations)
//	  • SVD built on the eigen engine (A ≈ U·diag(S)·Vᵀ)
//	  • Matrix functions: Exp, Log, Sqrt (Denman–Beavers), Pow
//	  • Norms: Frobenius, L1, L∞, spectral (L2)
//	  • Rank & Nullspace via tolerant row reduction
//
// ✨ Contracts that hold everywhere:
//   - Value semantics: every operation returns freshly allocated results and
//     never mutates or aliases its inputs (working copies are cloned on
//     entry; the only in-place utility is the explicitly named Dense.Fill).
//   - Sentinel errors: ErrDimensionMismatch, ErrSingular,
//     ErrNotPositiveDefinite and friends are matched with errors.Is; kernels
//     add a single operation tag via %w wrapping.
//   - Honest iteration: PowerIteration, QRAlgorithm, EigenSymmetric, SVD and
//     Sqrt report {Iterations, Converged}; exhausting the cap is a reported
//     fact, never an error and never silent.
//   - Reproducible randomness: randomized starts draw from a seedable source
//     (WithSeed / WithRNG); the default is a fixed seed, not wall-clock time.
//
// ⚙️ Usage:
//
//	import "github.com/ldanchev/numera/matrix"
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)         // [[0.6, -0.7], [-0.2, 0.4]]
//	eig, err := matrix.PowerIteration(a,  // dominant eigenpairs
//	    matrix.WithSeed(42), matrix.WithMaxIterations(500))
//
// Numerical caveats (documented, intentional):
//   - QRGramSchmidt is the classical, not modified, variant: expect reduced
//     orthogonality on ill-conditioned input; QRHouseholder is the stabler
//     square-matrix alternative.
//   - QRAlgorithm handles real-diagonalizable matrices only; complex
//     eigenvalue pairs surface as Converged == false.
//   - PowerIteration is reliable chiefly for symmetric matrices with
//     well-separated eigenvalues; ordering is approximate.
//
// Concurrency: all operations are synchronous and share no state; concurrent
// calls are safe as long as each goroutine owns its inputs and its RNG.
package matrix
