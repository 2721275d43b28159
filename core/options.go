// SPDX-License-Identifier: MIT

// Package core: functional configuration shared by every solver.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, which resolves defaults and re-validates the effective values.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on invalid parameters
//     (programmer error); Gather returns sentinels for anything a custom
//     Option might have smuggled in.
//   - One Option type for both families; options a family does not use are
//     ignored by it (e.g. WithInitialGuess in rootfind).
package core

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the stopping threshold for every error metric.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the cap for bisection, false position,
	// fixed point and Newton–Raphson.
	DefaultMaxIterations = 50

	// DefaultSecantMaxIterations is the cap for the secant method.
	DefaultSecantMaxIterations = 20

	// DefaultLinearMaxIterations is the cap for Jacobi and Gauss–Seidel.
	DefaultLinearMaxIterations = 100

	// DefaultPivotEpsilon is the |A[i][i]| threshold at or below which a
	// diagonal entry counts as zero in the iterative linear solvers.
	DefaultPivotEpsilon = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid     = "core: WithTolerance: tol must be finite and > 0"
	panicMaxIterationsInvalid = "core: WithMaxIterations: n must be > 0"
	panicPivotEpsilonInvalid  = "core: WithPivotEpsilon: eps must be finite and >= 0"
)

// Observer is invoked once per pass, right after the record is produced and
// before the convergence check of that pass. It must not retain or mutate
// rec.Values beyond the call if a Trace is also being collected.
type Observer func(rec Record)

// Option mutates Options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// Options is the effective configuration of one solver call.
type Options struct {
	Tolerance     float64   // > 0; DefaultTolerance
	MaxIterations int       // > 0; family default
	Trace         bool      // collect a Trace into Result.Trace
	Observer      Observer  // optional streaming hook
	InitialGuess  []float64 // linsolve only; nil ⇒ zero vector
	PivotEpsilon  float64   // linsolve only; DefaultPivotEpsilon
}

// WithTolerance sets the stopping tolerance.
// Panics when tol is NaN, ±Inf or ≤ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the iteration cap.
// Panics when n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithTrace asks the solver to collect every pass into Result.Trace.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithObserver installs a per-pass callback (the streaming alternative to
// WithTrace; both may be combined).
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithInitialGuess sets the starting vector of an iterative linear solver.
// The slice is copied on Gather; a length mismatch is reported by the solver.
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) { o.InitialGuess = x0 }
}

// WithPivotEpsilon sets the near-zero diagonal threshold for linear solvers.
// Panics when eps is NaN, ±Inf or negative.
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.PivotEpsilon = eps }
}

// DefaultOptions returns the documented defaults with the given family cap.
func DefaultOptions(maxIterations int) Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: maxIterations,
		PivotEpsilon:  DefaultPivotEpsilon,
	}
}

// Gather resolves opts over DefaultOptions(defaultMaxIterations) and validates
// the effective values.
//
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply opts left-to-right (nil options are skipped).
//   - Stage 3: validate tolerance, cap and pivot epsilon; copy InitialGuess.
//
// Errors:
//   - ErrBadTolerance, ErrBadMaxIterations, ErrBadInput (pivot epsilon).
//
// Complexity: O(len(opts) + len(InitialGuess)).
func Gather(defaultMaxIterations int, opts ...Option) (Options, error) {
	o := DefaultOptions(defaultMaxIterations)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return o, ErrBadTolerance
	}
	if o.MaxIterations <= 0 {
		return o, ErrBadMaxIterations
	}
	if math.IsNaN(o.PivotEpsilon) || math.IsInf(o.PivotEpsilon, 0) || o.PivotEpsilon < 0 {
		return o, ErrBadInput
	}
	if o.InitialGuess != nil {
		x0 := make([]float64, len(o.InitialGuess))
		copy(x0, o.InitialGuess)
		o.InitialGuess = x0
	}

	return o, nil
}
