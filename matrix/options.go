// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and iterative
// solvers. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//     Randomized solvers draw from an explicit, seedable source (WithSeed /
//     WithRNG) and default to a fixed seed.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option state is unexported; public APIs consume ...Option.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence tolerance for iterative solvers:
	// power iteration (‖A·v − λ·v‖∞), the QR algorithm (Σ|off-diagonal|),
	// Jacobi sweeps and the Denman–Beavers square-root iteration (‖ΔY‖_F).
	DefaultTolerance = 1e-10

	// DefaultPivotTolerance is the magnitude below which an elimination pivot
	// is treated as zero: LU/Inverse/Solve raise ErrSingular, rank/nullspace
	// reduction skips the column, Gram-Schmidt zeroes the dependent column.
	DefaultPivotTolerance = 1e-10

	// DefaultMaxIterations caps every iterative solver. Reaching the cap is
	// not an error; results carry Converged=false instead.
	DefaultMaxIterations = 1000

	// DefaultTaylorTerms is the number of series terms evaluated by the
	// matrix exponential and the near-identity matrix logarithm.
	DefaultTaylorTerms = 24
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "matrix: WithTolerance: tol must be finite, positive"
	panicPivotTolInvalid   = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid    = "matrix: WithMaxIterations: n must be > 0"
	panicEigenCountInvalid = "matrix: WithEigenCount: k must be > 0"
	panicTaylorInvalid     = "matrix: WithTaylorTerms: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	tol         float64    // convergence tolerance; DefaultTolerance
	pivotTol    float64    // pivot/rank tolerance; DefaultPivotTolerance
	maxIter     int        // iteration cap; DefaultMaxIterations
	eigenCount  int        // eigenpairs to extract; 0 ⇒ all available
	taylorTerms int        // series terms; DefaultTaylorTerms
	seed        int64      // RNG seed; 0 ⇒ defaultRNGSeed (see rng.go)
	rng         *rand.Rand // explicit RNG; overrides seed when non-nil
}

// gatherOptions resolves the effective configuration: defaults first, then
// user setters in order. O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{
		tol:         DefaultTolerance,
		pivotTol:    DefaultPivotTolerance,
		maxIter:     DefaultMaxIterations,
		eigenCount:  0,
		taylorTerms: DefaultTaylorTerms,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithTolerance sets the convergence tolerance for iterative solvers.
// Panics when tol is non-finite or not strictly positive.
//
// AI-Hints:
//   - 1e-10 suits float64 on well-conditioned input; loosen toward 1e-6 for
//     noisy data before loosening the iteration cap.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithPivotTolerance sets the zero-pivot threshold for elimination-based
// routines (LU, Inverse, Solve, Rank, Nullspace, Gram-Schmidt rank check).
// Panics when tol is non-finite or negative; zero restores exact comparison.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *options) { o.pivotTol = tol }
}

// WithMaxIterations caps the number of iterations of an iterative solver.
// Reaching the cap is reported through Convergence, never as an error.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithEigenCount limits PowerIteration (and SVD) to the k dominant
// eigenpairs. Values larger than the matrix dimension are clamped by the
// solver. Panics when k <= 0; omit the option to extract all pairs.
func WithEigenCount(k int) Option {
	if k <= 0 {
		panic(panicEigenCountInvalid)
	}

	return func(o *options) { o.eigenCount = k }
}

// WithTaylorTerms sets the number of series terms for Exp and the
// near-identity Log path. Panics when n <= 0.
func WithTaylorTerms(n int) Option {
	if n <= 0 {
		panic(panicTaylorInvalid)
	}

	return func(o *options) { o.taylorTerms = n }
}

// WithSeed fixes the seed of the random start vectors used by PowerIteration
// and SVD. Seed 0 selects the package default seed, so every run is
// reproducible unless WithRNG supplies an external source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRNG supplies an explicit random source, overriding WithSeed.
// The *rand.Rand is used single-threaded within one call; do not share it
// across concurrent calls.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}
