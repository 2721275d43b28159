// SPDX-License-Identifier: MIT

// Package rootfind: shared validation and result plumbing.
// Every method funnels through prepare → loop → succeed/fail so that the
// iteration accounting and error wrapping stay identical across methods.
package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/core"
)

// noMetric marks "no pass completed" in failed results.
var noMetric = math.NaN()

// prepare validates the function, the starting points and the options.
//
// Implementation:
//   - Stage 1: reject a nil Expression (ErrNilFunction).
//   - Stage 2: reject NaN/±Inf starting points (ErrBadInput).
//   - Stage 3: resolve options over the family default cap.
//
// Complexity: O(len(points) + len(opts)).
func prepare(f core.Expression, defaultMax int, opts []core.Option, points ...float64) (core.Options, error) {
	if f == nil {
		return core.Options{}, core.ErrNilFunction
	}
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return core.Options{}, fmt.Errorf("starting point #%d is %v: %w", i, p, core.ErrBadInput)
		}
	}

	return core.Gather(defaultMax, opts...)
}

// succeed builds a converged result carrying the recorder's trace.
func succeed(x float64, iterations int, metric float64, rec *core.Recorder) (core.Result[float64], error) {
	return core.Converged(x, iterations, metric).WithTrace(rec.Trace()), nil
}

// fail wraps err with op, classifies it and attaches whatever was recorded.
// attempted is the number of COMPLETED passes; metric is the last tested
// metric or noMetric. rec may be nil for failures before the loop.
func fail(op string, attempted int, metric float64, rec *core.Recorder, err error) (core.Result[float64], error) {
	werr := core.Errorf(op, err)
	res := core.Failed[float64](core.KindOf(err), attempted, werr)
	res.Metric = metric
	if rec != nil {
		res.Trace = rec.Trace()
	}

	return res, werr
}

// exhausted reports loop exhaustion: Failed(NonConvergence, maxIterations).
func exhausted(op string, maxIter int, metric float64, rec *core.Recorder) (core.Result[float64], error) {
	return fail(op, maxIter, metric, rec, fmt.Errorf("%w (%d iterations)", core.ErrNonConvergence, maxIter))
}
