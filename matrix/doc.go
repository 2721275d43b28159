// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra surface used by the
// iterative solvers: a Matrix interface, a row-major Dense implementation,
// shape validators and a matrix–vector product.
//
// What & Why:
//
//	Iterative solvers (Jacobi, Gauss–Seidel) only need element access, a
//	square-shape guarantee and A·x for residuals. Keeping that surface behind
//	an interface lets callers plug custom storage, while *Dense unlocks
//	flat-slice fast paths in hot loops.
//
// Policy:
//   - Public accessors never panic on user input; they return sentinel errors
//     wrapped with method context ("Dense.At(3,0): matrix: index out of range").
//   - Dense rejects NaN/±Inf on ingestion (NewDenseFrom) and on Set.
//   - Loop orders are fixed (row-major), so results are bit-for-bit reproducible.
//
// Complexity quicksheet:
//   - NewDense / NewDenseFrom: O(r*c); At/Set: O(1); Clone: O(r*c);
//     MatVec: O(r*c).
package matrix
