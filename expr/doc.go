// SPDX-License-Identifier: MIT

// Package expr is the expression engine behind the root finders: it parses a
// single-variable formula in x, evaluates it, differentiates it symbolically
// and expands it into a Maclaurin polynomial.
//
// Notation:
//
//	numbers     2, 0.5, .25, 1e-3
//	variable    x
//	constants   pi, e
//	operators   + - * / ^ (also **), unary minus, parentheses
//	implicit    2x, 3(x+1), x sin(x), (x-1)(x+1)
//	functions   sin cos tan atan exp ln log sqrt abs sign
//	LaTeX       \sin{x}, \frac{a}{b}, x^{2}, a \cdot b, \pi
//
// "log" is the natural logarithm, like "ln". Precedence from low to high:
// additive, multiplicative (explicit or implicit), unary minus, power.
// Power is right-associative and binds tighter than unary minus, so -x^2
// means -(x^2) and 2^-1 is 0.5.
//
// Derivatives are built with the sum, product, quotient, power and chain
// rules followed by light constant folding (0+a, 1·a, a^1, number∘number).
// No general simplification is attempted, so repeated derivatives of
// products grow quickly; Maclaurin caps the order at MaxSeriesTerms.
//
// Parsed expressions are immutable: one *Expr may be evaluated from many
// goroutines at once. Malformed input yields a *ParseError that unwraps to
// core.ErrParse.
package expr
