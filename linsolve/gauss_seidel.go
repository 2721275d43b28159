// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/matrix"
)

// GaussSeidel solves A·x = b with sequential (in-place) updates.
//
// Algorithm Outline:
//
//	x = initial guess (zero vector by default)
//	for k = 1..MaxIterations:
//	  for i = 0..n−1 in order:
//	    old  = x[i]
//	    x[i] = (b[i] − Σ_{j<i} A[i][j]·x[j] (this pass) − Σ_{j>i} A[i][j]·x[j] (previous pass)) / A[i][i]
//	    step = max(step, |x[i] − old|)
//	  record (k, x..., step)
//	  if step < tol → Converged(x, k)
//
// Updating x in place is what makes entries j < i come from the current
// pass. Row order therefore matters, unlike Jacobi.
//
// Errors: same set as Jacobi.
//
// Complexity: O(MaxIterations · n²).
func GaussSeidel(A matrix.Matrix, b []float64, opts ...core.Option) (core.Result[[]float64], error) {
	s, err := prepare(A, b, opts)
	if err != nil {
		return failed(opGaussSeidel, 0, math.NaN(), nil, err)
	}

	var (
		rec     = core.NewRecorder(Schema(MethodGaussSeidel, s.n), s.o)
		x       = append([]float64(nil), s.x0...)
		scratch = make([]float64, s.n+1)
		step    float64
		prev    = math.NaN()
		d, old  float64
		i, k    int
	)
	for k = 1; k <= s.o.MaxIterations; k++ {
		step = 0
		for i = 0; i < s.n; i++ {
			if d, err = s.pivot(i); err != nil {
				return failed(opGaussSeidel, k-1, prev, rec, err)
			}
			old = x[i]
			x[i] = (s.b[i] - s.offDiagonal(i, x)) / d
			step = math.Max(step, math.Abs(x[i]-old))
		}

		record(rec, scratch, k, x, step)
		if step < s.o.Tolerance {
			return core.Converged(x, k, step).WithTrace(rec.Trace()), nil
		}
		prev = step
	}

	err = fmt.Errorf("%w (%d iterations)", core.ErrNonConvergence, s.o.MaxIterations)

	return failed(opGaussSeidel, s.o.MaxIterations, step, rec, err)
}
