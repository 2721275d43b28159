// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/numerics/core"
)

// FalsePosition (regula falsi) finds a root of f by secant interpolation
// inside the bracket [lower, upper].
//
// Algorithm Outline:
//
//	For i = 1..MaxIterations:
//	  den   = f(upper) − f(lower)           (den == 0 → ErrZeroDenominator)
//	  root  = (lower·f(upper) − upper·f(lower)) / den
//	  error = |f(root)|                      (residual)
//	  record (i, lower, upper, root, f(root), error)
//	  if error < tol → Converged(root, i)
//	  if f(lower)·f(root) < 0 → upper = root, else lower = root
//
// Stopping rule:
//
//	Residual-based, because one end of the bracket typically stays fixed
//	(classic false-position stagnation) and the width never reaches zero.
//
// Policy:
//
//	The sign condition is NOT checked before the loop. Without a sign change
//	the method degrades into an unbracketed secant walk; it either finds a
//	root anyway, hits a zero denominator, or exhausts the cap.
//
// Errors:
//   - ErrZeroDenominator — Failed(KindZeroDenominator, completed passes).
//   - ErrNonConvergence  — Failed(KindNonConvergence, MaxIterations).
//   - Validation sentinels as in Bisection.
//
// Complexity: O(MaxIterations) evaluations of f (one new point per pass).
func FalsePosition(f core.Expression, lower, upper float64, opts ...core.Option) (core.Result[float64], error) {
	o, err := prepare(f, core.DefaultMaxIterations, opts, lower, upper)
	if err != nil {
		return fail(opFalsePosition, 0, noMetric, nil, err)
	}

	var (
		rec         = core.NewRecorder(FalsePositionSchema, o)
		fLower      = f.Evaluate(lower)
		fUpper      = f.Evaluate(upper)
		i           int
		den         float64
		root, fRoot float64
		residual    = noMetric
	)
	for i = 1; i <= o.MaxIterations; i++ {
		den = fUpper - fLower
		if den == 0 {
			return fail(opFalsePosition, i-1, residual, rec, core.ErrZeroDenominator)
		}
		root = (lower*fUpper - upper*fLower) / den
		fRoot = f.Evaluate(root)
		residual = math.Abs(fRoot)

		rec.Record(i, lower, upper, root, fRoot, residual)
		if residual < o.Tolerance {
			return succeed(root, i, residual, rec)
		}

		if fLower*fRoot < 0 {
			upper, fUpper = root, fRoot
		} else {
			lower, fLower = root, fRoot
		}
	}

	return exhausted(opFalsePosition, o.MaxIterations, residual, rec)
}
