// SPDX-License-Identifier: MIT

// Package linsolve implements the stationary iterative solvers for A·x = b:
// Jacobi (parallel update) and Gauss–Seidel (sequential update).
//
// What & Why:
//
//	Both methods split A into its diagonal and off-diagonal parts and sweep
//	x_new[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//	until the infinity norm of the change between successive full iterates
//	drops below the tolerance. Jacobi reads only the previous iterate, so
//	its pass is order-independent; Gauss–Seidel reuses entries already
//	updated in the current pass (j < i) and, on diagonally dominant systems,
//	needs no more passes than Jacobi.
//
// Policy:
//   - Neither solver checks diagonal dominance up front. Divergence surfaces
//     as Failed(NonConvergence, MaxIterations); a diagonal entry with
//     |A[i][i]| ≤ PivotEpsilon surfaces as Failed(SingularDiagonal, k) where
//     k counts completed passes.
//   - IsDiagonallyDominant and Residual are caller-side diagnostics only.
//   - A, b and the initial guess are never mutated; results own their slices.
//
// Options (package core):
//   - WithTolerance (default 1e-6), WithMaxIterations (default 100),
//     WithInitialGuess (default zero vector), WithPivotEpsilon (default 1e-12),
//     WithTrace, WithObserver.
//
// Trace columns: iteration, x1..xn, error (see Schema).
//
// Complexity: O(MaxIterations · n²) time, O(n) working memory
// (+ O(MaxIterations · n) when tracing).
package linsolve
