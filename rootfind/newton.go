// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/numerics/core"
)

// NewtonRaphson finds a root of f from x0 using tangent steps.
//
// Algorithm Outline:
//  1. df = f.Derivative(), obtained ONCE before the loop. A failure is
//     returned as Failed(KindOf(err), 0): KindParse when the expression
//     engine could not build the derivative, KindInvalidInput for
//     ErrNoDerivative (e.g. a plain core.Func).
//  2. For i = 1..MaxIterations:
//     fx, dfx = f(x), df(x)
//     if dfx == 0 → Failed(ZeroDerivative, i−1)  (fatal, no retry)
//     x1    = x − fx/dfx
//     error = |x1 − x|
//     record (i, x, fx, dfx, error)
//     if error < tol → Converged(x1, i)
//     x = x1
//  3. Cap reached → Failed(NonConvergence, MaxIterations).
//
// Convergence:
//
//	Quadratic near a simple root: once close, the error roughly squares per
//	pass (x² − 2 from x0 = 1 converges to 1e-12 in five passes).
//
// Complexity: O(MaxIterations) evaluations of f and f'.
func NewtonRaphson(f core.Expression, x0 float64, opts ...core.Option) (core.Result[float64], error) {
	o, err := prepare(f, core.DefaultMaxIterations, opts, x0)
	if err != nil {
		return fail(opNewtonRaphson, 0, noMetric, nil, err)
	}
	df, err := f.Derivative()
	if err != nil {
		return fail(opNewtonRaphson, 0, noMetric, nil, err)
	}
	if df == nil {
		return fail(opNewtonRaphson, 0, noMetric, nil, core.ErrNoDerivative)
	}

	var (
		rec     = core.NewRecorder(NewtonRaphsonSchema, o)
		x       = x0
		fx, dfx float64
		x1      float64
		step    = noMetric
		i       int
	)
	for i = 1; i <= o.MaxIterations; i++ {
		fx = f.Evaluate(x)
		dfx = df.Evaluate(x)
		if dfx == 0 {
			return fail(opNewtonRaphson, i-1, step, rec, core.ErrZeroDerivative)
		}
		x1 = x - fx/dfx
		step = math.Abs(x1 - x)

		rec.Record(i, x, fx, dfx, step)
		if step < o.Tolerance {
			return succeed(x1, i, step, rec)
		}
		x = x1
	}

	return exhausted(opNewtonRaphson, o.MaxIterations, step, rec)
}
