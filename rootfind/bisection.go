// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/numerics/core"
)

// Bisection finds a root of f inside [lower, upper] by repeated halving.
//
// Algorithm Outline:
//  1. Require f(lower)·f(upper) ≤ 0, else fail with ErrSignCondition
//     before any iteration.
//  2. For i = 1..MaxIterations:
//     mid   = (lower+upper)/2
//     error = |upper−lower|/2              (interval half-width)
//     record (i, lower, upper, mid, f(mid), error)
//     if error < tol → Converged(mid, i)
//     if f(lower)·f(mid) ≥ 0 → lower = mid, else upper = mid
//  3. Cap reached → Failed(NonConvergence, MaxIterations).
//
// Stopping rule:
//
//	The half-width shrinks by exactly 2× per pass, so the number of passes
//	is bounded by ⌈log2(|upper−lower|/tol)⌉ whatever the scale of f.
//	f(mid) is recorded as a diagnostic only; it is NOT a stopping test here.
//
// An exact hit (f(mid) == 0) collapses the bracket onto mid, so the next
// pass converges on it instead of walking away from the root. The recorded
// half-width then drops straight to 0: it does not halve on that pass, and
// the pass-count bound above becomes an upper bound only.
//
// Errors:
//   - ErrNilFunction, ErrBadInput (non-finite bounds), ErrBadTolerance,
//     ErrBadMaxIterations  — before any iteration, KindInvalidInput.
//   - ErrSignCondition     — Failed(KindSignCondition, 0).
//   - ErrNonConvergence    — Failed(KindNonConvergence, MaxIterations).
//
// Complexity: O(MaxIterations) evaluations of f, O(MaxIterations) memory with tracing.
func Bisection(f core.Expression, lower, upper float64, opts ...core.Option) (core.Result[float64], error) {
	// Stage 1: Validate
	o, err := prepare(f, core.DefaultMaxIterations, opts, lower, upper)
	if err != nil {
		return fail(opBisection, 0, noMetric, nil, err)
	}
	fLower := f.Evaluate(lower)
	fUpper := f.Evaluate(upper)
	if fLower*fUpper > 0 {
		return fail(opBisection, 0, noMetric, nil, core.ErrSignCondition)
	}

	// Stage 2: Iterate
	var (
		rec       = core.NewRecorder(BisectionSchema, o)
		i         int
		mid, fMid float64
		halfWidth float64
	)
	for i = 1; i <= o.MaxIterations; i++ {
		mid = (lower + upper) / 2
		fMid = f.Evaluate(mid)
		halfWidth = math.Abs(upper-lower) / 2

		rec.Record(i, lower, upper, mid, fMid, halfWidth)
		if halfWidth < o.Tolerance {
			return succeed(mid, i, halfWidth, rec)
		}

		switch {
		case fMid == 0:
			lower, upper, fLower = mid, mid, 0
		case fLower*fMid >= 0:
			lower, fLower = mid, fMid
		default:
			upper = mid
		}
	}

	// Stage 3: Exhausted
	return exhausted(opBisection, o.MaxIterations, halfWidth, rec)
}
