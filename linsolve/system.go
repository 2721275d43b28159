// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/matrix"
)

// system is the validated, read-only view of one A·x = b call.
type system struct {
	n    int
	rows [][]float64 // rows[i][j] == A(i,j); aliases *Dense storage, never written
	b    []float64
	x0   []float64
	o    core.Options
}

// prepare validates A, b and the options.
//
// Implementation:
//   - Stage 1: A non-nil and square; b of length n with finite entries.
//   - Stage 2: resolve options; the initial guess must have n finite entries
//     (zero vector when absent).
//   - Stage 3: expose A as rows: *Dense rows alias the flat buffer, any other
//     Matrix is copied once through At (rejecting non-finite entries).
//
// All validation failures wrap core.ErrBadInput, so KindOf reports
// KindInvalidInput while errors.Is still matches the matrix sentinel.
//
// Complexity: O(n) for *Dense, O(n²) for the At fallback.
func prepare(A matrix.Matrix, b []float64, opts []core.Option) (*system, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, badInput(err)
	}
	n := A.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, badInput(fmt.Errorf("b: %w", err))
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, badInput(fmt.Errorf("b: %w", err))
	}

	o, err := core.Gather(core.DefaultLinearMaxIterations, opts...)
	if err != nil {
		return nil, err
	}
	x0 := o.InitialGuess
	if x0 == nil {
		x0 = make([]float64, n)
	} else {
		if err = matrix.ValidateVecLen(x0, n); err != nil {
			return nil, badInput(fmt.Errorf("initial guess: %w", err))
		}
		if err = matrix.ValidateFiniteVec(x0); err != nil {
			return nil, badInput(fmt.Errorf("initial guess: %w", err))
		}
	}

	rows, err := rowsOf(A)
	if err != nil {
		return nil, badInput(err)
	}

	return &system{n: n, rows: rows, b: b, x0: x0, o: o}, nil
}

// rowsOf exposes A row by row.
func rowsOf(A matrix.Matrix) ([][]float64, error) {
	n := A.Rows()
	rows := make([][]float64, n)
	if d, ok := A.(*matrix.Dense); ok {
		for i := 0; i < n; i++ {
			rows[i] = d.RawRow(i)
		}

		return rows, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("A(%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// badInput marks a validation failure as invalid input, keeping the cause.
func badInput(err error) error {
	return fmt.Errorf("%w: %w", core.ErrBadInput, err)
}

// pivot returns A[i][i] or ErrSingularDiagonal when |A[i][i]| ≤ eps.
func (s *system) pivot(i int) (float64, error) {
	d := s.rows[i][i]
	if math.Abs(d) <= s.o.PivotEpsilon {
		return 0, fmt.Errorf("row %d: |A[%d][%d]| = %g: %w", i, i, i, math.Abs(d), core.ErrSingularDiagonal)
	}

	return d, nil
}

// offDiagonal returns Σ_{j≠i} A[i][j]·x[j].
func (s *system) offDiagonal(i int, x []float64) float64 {
	var (
		sum float64
		row = s.rows[i]
	)
	for j := 0; j < s.n; j++ {
		if j != i {
			sum += row[j] * x[j]
		}
	}

	return sum
}

// record appends (k, x1..xn, step) through the recorder, reusing scratch.
func record(rec *core.Recorder, scratch []float64, k int, x []float64, step float64) {
	copy(scratch, x)
	scratch[len(x)] = step
	rec.Record(k, scratch...)
}

// failed builds a vector-valued failure, wrapping err with op.
func failed(op string, attempted int, metric float64, rec *core.Recorder, err error) (core.Result[[]float64], error) {
	werr := core.Errorf(op, err)
	res := core.Failed[[]float64](core.KindOf(err), attempted, werr)
	res.Metric = metric
	if rec != nil {
		res.Trace = rec.Trace()
	}

	return res, werr
}
