// Package numera is a dense real-matrix algebra engine: decompositions,
// eigen-solving, singular values, matrix functions, norms and rank analysis.
//
// 🚀 What is numera?
//
//	A pure-Go numerical library built around a single row-major Dense type:
//		• Arithmetic kernels: Add, Sub, Mul, Scale, Hadamard, Transpose, MatVec
//		• Factorizations: pivoted LU, Gram-Schmidt & Householder QR, Cholesky
//		• Eigen engine: power iteration with deflation, QR algorithm, Jacobi sweeps
//		• SVD: singular values and vectors via the eigen engine
//		• Matrix functions: Exp, Log, Sqrt (Denman–Beavers), Pow
//		• Norms: Frobenius, L1, L∞ and the spectral (L2) norm
//		• Rank & nullspace via tolerant Gaussian elimination
//
// ✨ Why choose numera?
//
//   - Value semantics – every operation returns a fresh matrix, inputs are
//     never mutated or aliased
//   - Honest iteration – every iterative solver reports Iterations and
//     Converged instead of silently returning a best-effort answer
//   - Reproducible randomness – randomized starts are seedable, never
//     time-based
//   - Pure Go – no cgo, no hidden machinery
//
// Everything lives in one subpackage:
//
//	matrix/ — Dense storage, kernels, decompositions, eigen/SVD, functions
//
// Dive into the matrix package documentation for contracts, tolerances and
// worked examples.
//
//	go get github.com/ldanchev/numera/matrix
package numera
