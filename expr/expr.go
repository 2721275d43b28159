// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/numerics/core"
)

// Expr is a parsed, immutable expression in the variable x.
// It implements core.Expression.
type Expr struct {
	src  string
	root node
}

var _ core.Expression = (*Expr)(nil)

// Parse compiles src into an *Expr.
//
// Implementation:
//   - Stage 1: tokenize (numbers, identifiers, operators, brackets).
//   - Stage 2: recursive descent with implicit multiplication.
//   - Stage 3: reject trailing tokens.
//
// Errors: *ParseError (errors.Is(err, core.ErrParse) holds) on empty input,
// unknown identifiers, unbalanced brackets or stray tokens.
//
// Complexity: O(len(src)).
func Parse(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &ParseError{Input: src, Pos: 0, Msg: "empty expression"}
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected "+quote(t.text))
	}

	return &Expr{src: src, root: root}, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return e
}

// Evaluate returns the value at x. Domain errors follow IEEE-754
// (ln(-1) is NaN, 1/0 is +Inf); they are never reported as Go errors.
func (e *Expr) Evaluate(x float64) float64 { return e.root.eval(x) }

// Derivative returns d/dx as a new *Expr. The error is always nil; it is
// part of the core.Expression contract.
func (e *Expr) Derivative() (core.Expression, error) {
	return e.Diff(), nil
}

// Diff is Derivative with the concrete type.
func (e *Expr) Diff() *Expr {
	d := e.root.diff()

	return &Expr{src: d.String(), root: d}
}

// String renders the tree in canonical notation (explicit "*", minimal parentheses).
// The output parses back to an equivalent expression.
func (e *Expr) String() string { return e.root.String() }

// Source returns the text the expression was parsed from (for derivatives,
// the canonical rendering).
func (e *Expr) Source() string { return e.src }

// DependsOnX reports whether the expression mentions x at all.
func (e *Expr) DependsOnX() bool { return e.root.hasX() }

func quote(s string) string { return strconv.Quote(s) }
func itoa(i int) string     { return strconv.Itoa(i) }
