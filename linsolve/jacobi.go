// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/matrix"
)

// Jacobi solves A·x = b with parallel updates.
//
// Algorithm Outline:
//
//	x_old = initial guess (zero vector by default)
//	for k = 1..MaxIterations:
//	  for every row i (reading x_old only):
//	    x_new[i] = (b[i] − Σ_{j≠i} A[i][j]·x_old[j]) / A[i][i]
//	  step = max_i |x_new[i] − x_old[i]|
//	  record (k, x_new..., step)
//	  if step < tol → Converged(x_new, k)
//	  x_old, x_new = x_new, x_old
//
// All updates of a pass are computed before any is committed, so the row
// order cannot influence the result.
//
// Errors:
//   - ErrBadInput (wrapping the matrix sentinel) for nil/non-square A, length
//     or finiteness problems in b or the initial guess; KindInvalidInput.
//   - ErrSingularDiagonal when |A[i][i]| ≤ PivotEpsilon.
//   - ErrNonConvergence when MaxIterations passes did not reach tol.
//
// Complexity: O(MaxIterations · n²).
func Jacobi(A matrix.Matrix, b []float64, opts ...core.Option) (core.Result[[]float64], error) {
	// Stage 1: Validate
	s, err := prepare(A, b, opts)
	if err != nil {
		return failed(opJacobi, 0, math.NaN(), nil, err)
	}

	// Stage 2: Iterate
	var (
		rec     = core.NewRecorder(Schema(MethodJacobi, s.n), s.o)
		xOld    = append([]float64(nil), s.x0...)
		xNew    = make([]float64, s.n)
		scratch = make([]float64, s.n+1)
		step    float64
		prev    = math.NaN()
		d       float64
		i, k    int
	)
	for k = 1; k <= s.o.MaxIterations; k++ {
		step = 0
		for i = 0; i < s.n; i++ {
			if d, err = s.pivot(i); err != nil {
				return failed(opJacobi, k-1, prev, rec, err)
			}
			xNew[i] = (s.b[i] - s.offDiagonal(i, xOld)) / d
			step = math.Max(step, math.Abs(xNew[i]-xOld[i]))
		}

		record(rec, scratch, k, xNew, step)
		if step < s.o.Tolerance {
			return core.Converged(xNew, k, step).WithTrace(rec.Trace()), nil
		}
		xOld, xNew = xNew, xOld
		prev = step
	}

	// Stage 3: Exhausted
	err = fmt.Errorf("%w (%d iterations)", core.ErrNonConvergence, s.o.MaxIterations)

	return failed(opJacobi, s.o.MaxIterations, step, rec, err)
}
