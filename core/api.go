// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Expression handle consumed by root finders, plus closure adapters.
// Policy:
//   - Root finders only borrow an Expression for the duration of one call.
//   - Implementations must be side-effect free; the solvers may evaluate the
//     same point more than once.

package core

// Expression is a single-variable real function.
//
// Evaluate must be safe for concurrent use when the same Expression is shared
// across goroutines (parsed expressions in package expr are immutable).
// Derivative returns d/dx of the function; implementations that cannot
// differentiate return ErrNoDerivative (or an ErrParse-wrapping error when an
// engine fails to build the derivative).
type Expression interface {
	Evaluate(x float64) float64
	Derivative() (Expression, error)
}

// Func adapts a plain closure. It has no derivative.
type Func func(x float64) float64

// Evaluate calls f(x).
func (f Func) Evaluate(x float64) float64 { return f(x) }

// Derivative always fails with ErrNoDerivative.
func (f Func) Derivative() (Expression, error) { return nil, ErrNoDerivative }

// analytic pairs a closure with a known derivative chain.
type analytic struct {
	f     func(float64) float64
	chain []func(float64) float64 // chain[0] = f', chain[1] = f'', ...
}

// FuncWithDerivatives adapts f together with its successive derivatives
// (first, second, …). Derivative() walks the chain and fails with ErrNoDerivative
// once it is exhausted.
//
// Example:
//
//	f := core.FuncWithDerivatives(
//	    func(x float64) float64 { return x*x - 2 },
//	    func(x float64) float64 { return 2 * x },
//	)
func FuncWithDerivatives(f func(float64) float64, derivatives ...func(float64) float64) Expression {
	return analytic{f: f, chain: derivatives}
}

func (a analytic) Evaluate(x float64) float64 { return a.f(x) }

func (a analytic) Derivative() (Expression, error) {
	if len(a.chain) == 0 || a.chain[0] == nil {
		return nil, ErrNoDerivative
	}

	return analytic{f: a.chain[0], chain: a.chain[1:]}, nil
}
