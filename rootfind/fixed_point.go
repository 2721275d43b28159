// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/numerics/core"
)

// FixedPoint solves x = g(x) by repeated application of g from x0.
//
// Algorithm Outline:
//
//	For i = 1..MaxIterations:
//	  x1    = g(x)
//	  error = |x1 − x|
//	  record (i, x, g(x), error)
//	  if error < tol → Converged(x1, i)
//	  x = x1
//
// No contraction check is made: a g that is not locally contractive near the
// fixed point diverges, and the iteration cap is the only safety net. A
// diverging run (including one that overflows to ±Inf/NaN) ends as
// Failed(NonConvergence, MaxIterations); it never loops forever.
//
// Complexity: O(MaxIterations) evaluations of g.
func FixedPoint(g core.Expression, x0 float64, opts ...core.Option) (core.Result[float64], error) {
	o, err := prepare(g, core.DefaultMaxIterations, opts, x0)
	if err != nil {
		return fail(opFixedPoint, 0, noMetric, nil, err)
	}

	var (
		rec  = core.NewRecorder(FixedPointSchema, o)
		x    = x0
		x1   float64
		step = noMetric
		i    int
	)
	for i = 1; i <= o.MaxIterations; i++ {
		x1 = g.Evaluate(x)
		step = math.Abs(x1 - x)

		rec.Record(i, x, x1, step)
		if step < o.Tolerance {
			return succeed(x1, i, step, rec)
		}
		x = x1
	}

	return exhausted(opFixedPoint, o.MaxIterations, step, rec)
}
