// SPDX-License-Identifier: MIT

package linsolve

import (
	"strconv"

	"github.com/katalvlaran/numerics/core"
)

// Method names stamped on traces.
const (
	MethodJacobi      = "jacobi"
	MethodGaussSeidel = "gauss-seidel"
)

// op tags used when wrapping errors.
const (
	opJacobi      = "Jacobi"
	opGaussSeidel = "GaussSeidel"
	opResidual    = "Residual"
	opDominance   = "IsDiagonallyDominant"
)

// Schema returns the trace layout for an n-unknown system solved by method:
// columns x1..xn followed by the infinity-norm step.
//
// Example:
//
//	Schema(MethodJacobi, 2).Header() == [iteration x1 x2 error]
func Schema(method string, n int) core.Schema {
	cols := make([]string, 0, n+1)
	for i := 1; i <= n; i++ {
		cols = append(cols, "x"+strconv.Itoa(i))
	}
	cols = append(cols, core.ErrorColumn)

	return core.Schema{Method: method, Columns: cols}
}
