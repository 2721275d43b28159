// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by all solver families.
// Solvers MUST return these sentinels (optionally wrapped with operation
// context via fmt.Errorf("%s: %w", op, ErrX)) and tests MUST check them via
// errors.Is. No solver panics on user-triggered numeric conditions; panics
// are reserved for invalid option values (programmer error).

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed expression input reported by an
	// expression engine. Engines wrap it in their own positional error type.
	ErrParse = errors.New("core: malformed expression")

	// ErrSignCondition indicates that a bracketing method requires
	// f(lower)·f(upper) ≤ 0 and the interval does not satisfy it.
	ErrSignCondition = errors.New("core: function does not change sign on the interval")

	// ErrZeroDerivative indicates that Newton–Raphson hit f'(x) == 0.
	ErrZeroDerivative = errors.New("core: derivative is zero")

	// ErrZeroDenominator indicates a vanishing secant/false-position denominator.
	ErrZeroDenominator = errors.New("core: zero denominator")

	// ErrSingularDiagonal indicates a zero (or near-zero) diagonal pivot in an
	// iterative linear solver.
	ErrSingularDiagonal = errors.New("core: zero diagonal entry")

	// ErrNonConvergence indicates the iteration cap was reached without the
	// error metric dropping below the tolerance.
	ErrNonConvergence = errors.New("core: iteration limit reached without convergence")

	// ErrNilFunction indicates a nil Expression was passed to a root finder.
	ErrNilFunction = errors.New("core: function is nil")

	// ErrNoDerivative indicates the Expression cannot provide a derivative.
	ErrNoDerivative = errors.New("core: derivative not available")

	// ErrBadTolerance indicates a tolerance that is not finite and positive.
	ErrBadTolerance = errors.New("core: tolerance must be finite and > 0")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("core: max iterations must be > 0")

	// ErrBadInput indicates structurally invalid arguments (NaN bounds,
	// mismatched lengths and similar). Packages wrap it with detail.
	ErrBadInput = errors.New("core: invalid input")
)

// Errorf wraps err with an operation tag, preserving the sentinel for errors.Is.
// Use only when err != nil.
//
// Example:
//
//	return core.Failed[float64](core.KindSignCondition, 0, core.Errorf("Bisection", core.ErrSignCondition))
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
