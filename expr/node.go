// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"strconv"
)

// node is one immutable vertex of an expression tree.
type node interface {
	eval(x float64) float64
	diff() node
	hasX() bool
	prec() int
	String() string
}

// precedence levels used by String to place parentheses.
const (
	precAdd = iota + 1
	precMul
	precNeg
	precPow
	precAtom
)

type (
	num      struct{ v float64 }
	constant struct {
		name string
		v    float64
	}
	variable struct{}
	neg      struct{ a node }
	binary   struct {
		op   byte // + - * / ^
		l, r node
	}
	call struct {
		fn  *function
		arg node
	}
)

func (n num) eval(float64) float64 { return n.v }
func (n num) diff() node           { return num{0} }
func (n num) hasX() bool           { return false }
func (n num) prec() int {
	if n.v < 0 {
		return precNeg
	}

	return precAtom
}
func (n num) String() string { return strconv.FormatFloat(n.v, 'g', -1, 64) }

func (c constant) eval(float64) float64 { return c.v }
func (c constant) diff() node           { return num{0} }
func (c constant) hasX() bool           { return false }
func (c constant) prec() int            { return precAtom }
func (c constant) String() string       { return c.name }

func (variable) eval(x float64) float64 { return x }
func (variable) diff() node             { return num{1} }
func (variable) hasX() bool             { return true }
func (variable) prec() int              { return precAtom }
func (variable) String() string         { return "x" }

func (n neg) eval(x float64) float64 { return -n.a.eval(x) }
func (n neg) diff() node             { return negate(n.a.diff()) }
func (n neg) hasX() bool             { return n.a.hasX() }
func (n neg) prec() int              { return precNeg }
func (n neg) String() string         { return "-" + wrap(n.a, n.a.prec() < precNeg) }

func (b binary) eval(x float64) float64 {
	l, r := b.l.eval(x), b.r.eval(x)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		return math.Pow(l, r)
	}
}

// diff applies the sum, product, quotient and power rules.
func (b binary) diff() node {
	switch b.op {
	case '+':
		return add(b.l.diff(), b.r.diff())
	case '-':
		return sub(b.l.diff(), b.r.diff())
	case '*':
		return add(mul(b.l.diff(), b.r), mul(b.l, b.r.diff()))
	case '/':
		return div(sub(mul(b.l.diff(), b.r), mul(b.l, b.r.diff())), pow(b.r, num{2}))
	}

	// power: three shapes, from cheapest to general
	switch {
	case !b.r.hasX(): // u^c → c·u^(c−1)·u'
		return mul(mul(b.r, pow(b.l, sub(b.r, num{1}))), b.l.diff())
	case !b.l.hasX(): // c^v → c^v·ln(c)·v'
		return mul(mul(b, lnOf(b.l)), b.r.diff())
	default: // u^v → u^v·(v'·ln(u) + v·u'/u)
		return mul(b, add(mul(b.r.diff(), lnOf(b.l)), div(mul(b.r, b.l.diff()), b.l)))
	}
}

func (b binary) hasX() bool { return b.l.hasX() || b.r.hasX() }

func (b binary) prec() int {
	switch b.op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

func (b binary) String() string {
	p := b.prec()
	var left, right string
	if b.op == '^' {
		// right-associative: parenthesize a power on the left, not on the right
		left = wrap(b.l, b.l.prec() <= precPow)
		right = wrap(b.r, b.r.prec() < precNeg)

		return left + "^" + right
	}
	left = wrap(b.l, b.l.prec() < p)
	right = wrap(b.r, b.r.prec() < p || (b.r.prec() == p && (b.op == '-' || b.op == '/')))
	if p == precAdd {
		return left + " " + string(b.op) + " " + right
	}

	return left + string(b.op) + right
}

func (c call) eval(x float64) float64 { return c.fn.eval(c.arg.eval(x)) }

// diff applies the chain rule: f(u)' = f'(u)·u'.
func (c call) diff() node     { return mul(c.fn.deriv(c.arg), c.arg.diff()) }
func (c call) hasX() bool     { return c.arg.hasX() }
func (c call) prec() int      { return precAtom }
func (c call) String() string { return c.fn.name + "(" + c.arg.String() + ")" }

func wrap(n node, paren bool) string {
	if paren {
		return "(" + n.String() + ")"
	}

	return n.String()
}
