// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/matrix"
)

// Residual returns ‖A·x − b‖∞, the largest absolute row error of a candidate
// solution. Use it to check a result independently of the step criterion
// the solvers stop on.
//
// Errors: ErrBadInput wrapping the matrix sentinel on shape problems.
//
// Complexity: O(n²) via matrix.MatVec.
func Residual(A matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return 0, core.Errorf(opResidual, badInput(err))
	}
	if err := matrix.ValidateVecLen(b, A.Rows()); err != nil {
		return 0, core.Errorf(opResidual, badInput(fmt.Errorf("b: %w", err)))
	}
	ax, err := matrix.MatVec(A, x)
	if err != nil {
		return 0, core.Errorf(opResidual, badInput(err))
	}

	var r float64
	for i := range ax {
		r = math.Max(r, math.Abs(ax[i]-b[i]))
	}

	return r, nil
}

// IsDiagonallyDominant reports whether every row satisfies
// |A[i][i]| > Σ_{j≠i} |A[i][j]| (strict row dominance), the classic
// sufficient condition for both solvers to converge from any start.
//
// It is a diagnostic only: Jacobi and GaussSeidel never call it, and
// non-dominant systems may still converge.
//
// Complexity: O(n²).
func IsDiagonallyDominant(A matrix.Matrix) (bool, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return false, core.Errorf(opDominance, badInput(err))
	}
	rows, err := rowsOf(A)
	if err != nil {
		return false, core.Errorf(opDominance, badInput(err))
	}

	var off float64
	for i, row := range rows {
		off = 0
		for j, v := range row {
			if j != i {
				off += math.Abs(v)
			}
		}
		if math.Abs(row[i]) <= off {
			return false, nil
		}
	}

	return true, nil
}
