// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/numerics/core"
)

// Secant finds a root of f from the two starting points xPrev (x₋₁) and x0,
// replacing Newton's derivative with a finite difference.
//
// Algorithm Outline:
//
//	For i = 1..MaxIterations:
//	  if f(x_{i-1}) == f(x_i) → Failed(ZeroDenominator, i−1)
//	  x_{i+1} = x_i − (x_{i-1} − x_i)·f(x_i) / (f(x_{i-1}) − f(x_i))
//	  error   = |x_{i+1} − x_i|
//	  record (i, x_{i-1}, x_i, f(x_i), error)
//	  if error < tol → Converged(x_{i+1}, i)
//	  shift: x_{i-1} ← x_i, x_i ← x_{i+1}
//
// Starting points symmetric about a parabola's vertex (e.g. −1 and 1 for
// x² − 2) give equal function values and fail immediately with zero
// iterations completed.
//
// Default cap: core.DefaultSecantMaxIterations (20).
//
// Complexity: O(MaxIterations) evaluations of f (one new point per pass).
func Secant(f core.Expression, xPrev, x0 float64, opts ...core.Option) (core.Result[float64], error) {
	o, err := prepare(f, core.DefaultSecantMaxIterations, opts, xPrev, x0)
	if err != nil {
		return fail(opSecant, 0, noMetric, nil, err)
	}

	var (
		rec       = core.NewRecorder(SecantSchema, o)
		x         = x0
		fPrev, fx = f.Evaluate(xPrev), f.Evaluate(x0)
		x1        float64
		step      = noMetric
		i         int
	)
	for i = 1; i <= o.MaxIterations; i++ {
		if fPrev == fx {
			return fail(opSecant, i-1, step, rec, core.ErrZeroDenominator)
		}
		x1 = x - (xPrev-x)*fx/(fPrev-fx)
		step = math.Abs(x1 - x)

		rec.Record(i, xPrev, x, fx, step)
		if step < o.Tolerance {
			return succeed(x1, i, step, rec)
		}

		// shift the two running points; only one new evaluation per pass
		xPrev, fPrev = x, fx
		x, fx = x1, f.Evaluate(x1)
	}

	return exhausted(opSecant, o.MaxIterations, step, rec)
}
