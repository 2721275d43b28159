// SPDX-License-Identifier: MIT

// Package rootfind: trace schemas and operation tags.
package rootfind

import "github.com/katalvlaran/numerics/core"

// Operation tags used to wrap sentinels (no magic strings at call sites).
const (
	opBisection     = "Bisection"
	opFalsePosition = "FalsePosition"
	opFixedPoint    = "FixedPoint"
	opNewtonRaphson = "NewtonRaphson"
	opSecant        = "Secant"
)

// Trace schemas. Column order equals the value order of every Record emitted
// by the corresponding method; the iteration index is implicit (Record.Iteration).
// Treat these as read-only.
var (
	// BisectionSchema: bracket, midpoint, residual (diagnostic only) and half-width.
	BisectionSchema = core.Schema{
		Method:  "bisection",
		Columns: []string{"lower", "upper", "mid", "f(mid)", core.ErrorColumn},
	}

	// FalsePositionSchema: bracket, interpolated root, residual (= error).
	FalsePositionSchema = core.Schema{
		Method:  "false-position",
		Columns: []string{"lower", "upper", "root", "f(root)", core.ErrorColumn},
	}

	// FixedPointSchema: current iterate, its image under g, step size.
	FixedPointSchema = core.Schema{
		Method:  "fixed-point",
		Columns: []string{"x", "g(x)", core.ErrorColumn},
	}

	// NewtonRaphsonSchema: current iterate, f and f' at it, step size.
	NewtonRaphsonSchema = core.Schema{
		Method:  "newton-raphson",
		Columns: []string{"x", "f(x)", "f'(x)", core.ErrorColumn},
	}

	// SecantSchema: the two running points, f at the newer one, step size.
	SecantSchema = core.Schema{
		Method:  "secant",
		Columns: []string{"x_{i-1}", "x_i", "f(x_i)", core.ErrorColumn},
	}
)
