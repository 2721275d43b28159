// SPDX-License-Identifier: MIT

// Package core: domain types shared by solvers (status, error kinds, results).
// Errors live in errors.go, tracing in trace.go, configuration in options.go.
package core

import "errors"

// Status is the terminal state of one solver call.
//
// Every solver walks Initialized → Iterating → {Converged | Failed}; only the
// terminal states are ever observable by the caller, and they are final: no
// solver retries within a single call.
type Status int

const (
	// StatusFailed marks a call that stopped without satisfying the tolerance.
	// It is the zero value so that an unset Result never reads as success.
	StatusFailed Status = iota

	// StatusConverged marks a call whose error metric dropped below tolerance.
	StatusConverged
)

// String returns a human-friendly status name.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ErrorKind classifies why a solver call failed.
type ErrorKind int

const (
	// KindNone is reported by converged results.
	KindNone ErrorKind = iota

	// KindParse — the expression engine rejected the input notation.
	KindParse

	// KindSignCondition — bracketing interval without a sign change.
	KindSignCondition

	// KindZeroDerivative — Newton–Raphson derivative vanished.
	KindZeroDerivative

	// KindZeroDenominator — secant/false-position denominator vanished.
	KindZeroDenominator

	// KindSingularDiagonal — zero pivot in Jacobi/Gauss–Seidel.
	KindSingularDiagonal

	// KindNonConvergence — iteration cap reached.
	KindNonConvergence

	// KindInvalidInput — arguments rejected before any iteration
	// (nil function, bad tolerance, shape mismatch, missing derivative).
	KindInvalidInput
)

// kindNames is indexed by ErrorKind.
var kindNames = [...]string{
	KindNone:             "None",
	KindParse:            "ParseError",
	KindSignCondition:    "SignConditionError",
	KindZeroDerivative:   "ZeroDerivativeError",
	KindZeroDenominator:  "ZeroDenominatorError",
	KindSingularDiagonal: "SingularDiagonalError",
	KindNonConvergence:   "NonConvergenceError",
	KindInvalidInput:     "InvalidInputError",
}

// String returns the canonical error-kind name (e.g. "SignConditionError").
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UnknownError"
	}

	return kindNames[k]
}

// kindSentinels maps each sentinel onto its kind. Order matters only for
// readability; a sentinel matches at most one entry.
var kindSentinels = []struct {
	err  error
	kind ErrorKind
}{
	{ErrParse, KindParse},
	{ErrSignCondition, KindSignCondition},
	{ErrZeroDerivative, KindZeroDerivative},
	{ErrZeroDenominator, KindZeroDenominator},
	{ErrSingularDiagonal, KindSingularDiagonal},
	{ErrNonConvergence, KindNonConvergence},
	{ErrNilFunction, KindInvalidInput},
	{ErrNoDerivative, KindInvalidInput},
	{ErrBadTolerance, KindInvalidInput},
	{ErrBadMaxIterations, KindInvalidInput},
	{ErrBadInput, KindInvalidInput},
}

// KindOf maps err onto an ErrorKind via errors.Is.
//
// Returns KindNone for a nil error and KindInvalidInput for errors that match
// none of the package sentinels (callers still get the original error in
// Result.Err).
//
// Complexity: O(len(sentinels)) errors.Is walks.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}

	return KindInvalidInput
}

// Result is the outcome of one solver call.
//
// T is float64 for root finding and []float64 for linear solving.
//
// Fields:
//   - Status     — StatusConverged or StatusFailed (final).
//   - Value      — the estimate; meaningful only when converged.
//   - Iterations — passes used (converged) or attempted (failed, ≤ cap).
//   - Metric     — error metric tested on the last completed pass
//     (NaN when no pass completed).
//   - Kind, Err  — failure classification and the wrapped sentinel;
//     KindNone and nil when converged.
//   - Trace      — per-pass records when WithTrace() was given, else nil.
type Result[T any] struct {
	Status     Status
	Value      T
	Iterations int
	Metric     float64
	Kind       ErrorKind
	Err        error
	Trace      *Trace
}

// Converged builds a successful Result.
func Converged[T any](value T, iterations int, metric float64) Result[T] {
	return Result[T]{
		Status:     StatusConverged,
		Value:      value,
		Iterations: iterations,
		Metric:     metric,
		Kind:       KindNone,
	}
}

// Failed builds a failed Result of the given kind. Metric is left NaN; solvers
// that completed passes overwrite it with the last tested metric.
func Failed[T any](kind ErrorKind, attempted int, err error) Result[T] {
	return Result[T]{
		Status:     StatusFailed,
		Iterations: attempted,
		Metric:     nan,
		Kind:       kind,
		Err:        err,
	}
}

// OK reports whether the call converged.
func (r Result[T]) OK() bool { return r.Status == StatusConverged }

// WithTrace attaches tr and returns the updated copy.
func (r Result[T]) WithTrace(tr *Trace) Result[T] {
	r.Trace = tr

	return r
}
