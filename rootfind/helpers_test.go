package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqrt2 is the positive root of x² − 2.
var sqrt2 = math.Sqrt2

// fSqrt2 is x² − 2 with its analytic derivative.
var fSqrt2 = core.FuncWithDerivatives(
	func(x float64) float64 { return x*x - 2 },
	func(x float64) float64 { return 2 * x },
)

// fNoRoot is x² + 1 with its analytic derivative.
var fNoRoot = core.FuncWithDerivatives(
	func(x float64) float64 { return x*x + 1 },
	func(x float64) float64 { return 2 * x },
)

// requireConverged asserts the common post-conditions of a converged run:
// status, iteration bound, trace length and last-metric < tol.
func requireConverged(t *testing.T, res core.Result[float64], err error, tol float64, maxIter int) {
	t.Helper()
	require.NoError(t, err)
	require.True(t, res.OK(), "expected convergence, got %v (%v)", res.Kind, res.Err)
	assert.Equal(t, core.KindNone, res.Kind)
	assert.LessOrEqual(t, res.Iterations, maxIter)
	assert.Less(t, res.Metric, tol)
	if res.Trace != nil {
		require.Equal(t, res.Iterations, res.Trace.Len(), "one record per pass")
		last, ok := res.Trace.Last()
		require.True(t, ok)
		assert.Equal(t, res.Iterations, last.Iteration)
		assert.Less(t, last.Metric(), tol, "the last recorded metric is the one that was tested")
		assert.Equal(t, res.Metric, last.Metric())
	}
}

// requireFailed asserts a failed run of the given kind and completed passes.
func requireFailed(t *testing.T, res core.Result[float64], err error, sentinel error, kind core.ErrorKind, attempted int) {
	t.Helper()
	require.Error(t, err)
	assert.False(t, res.OK())
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, res.Err, sentinel)
	assert.Equal(t, kind, res.Kind)
	assert.Equal(t, attempted, res.Iterations)
	if res.Trace != nil {
		assert.Equal(t, attempted, res.Trace.Len())
	}
}
