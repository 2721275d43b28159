// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numerics/core"
)

// MaxSeriesTerms bounds Maclaurin: derivative trees of products roughly
// double in size per order.
const MaxSeriesTerms = 20

// Series is a truncated power series Σ c_k·x^k, k = 0..len(Coefficients)−1.
// It implements core.Expression, so a root finder can run on the polynomial.
type Series struct {
	Coefficients []float64
}

var _ core.Expression = Series{}

// Maclaurin expands e around 0 into its first terms terms:
// c_k = f⁽ᵏ⁾(0) / k!, obtained from repeated symbolic differentiation.
//
// Errors:
//   - ErrBadOrder when terms ∉ [1, MaxSeriesTerms].
//   - ErrNotAnalytic (wrapped with the failing order) when some f⁽ᵏ⁾(0) is NaN or ±Inf.
//
// Complexity: O(terms · |tree_k|), where |tree_k| is the size of the k-th derivative.
func Maclaurin(e *Expr, terms int) (Series, error) {
	if terms < 1 || terms > MaxSeriesTerms {
		return Series{}, fmt.Errorf("Maclaurin(%d): %w", terms, ErrBadOrder)
	}

	var (
		coef      = make([]float64, terms)
		cur       = e.root
		factorial = 1.0
		v         float64
	)
	for k := 0; k < terms; k++ {
		if k > 0 {
			cur = cur.diff()
			factorial *= float64(k)
		}
		v = cur.eval(0)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Series{}, fmt.Errorf("Maclaurin: order %d derivative is %v at 0: %w", k, v, ErrNotAnalytic)
		}
		coef[k] = v / factorial
	}

	return Series{Coefficients: coef}, nil
}

// Evaluate computes the polynomial with Horner's scheme.
func (s Series) Evaluate(x float64) float64 {
	var acc float64
	for k := len(s.Coefficients) - 1; k >= 0; k-- {
		acc = acc*x + s.Coefficients[k]
	}

	return acc
}

// Derivative returns the term-wise derivative; a constant series yields zero.
func (s Series) Derivative() (core.Expression, error) {
	if len(s.Coefficients) <= 1 {
		return Series{Coefficients: []float64{0}}, nil
	}
	d := make([]float64, len(s.Coefficients)-1)
	for k := 1; k < len(s.Coefficients); k++ {
		d[k-1] = float64(k) * s.Coefficients[k]
	}

	return Series{Coefficients: d}, nil
}

// Order is the exponent of the truncation term O(x^Order).
func (s Series) Order() int { return len(s.Coefficients) }

// String renders "1 + x + 0.5*x^2 + O(x^3)", skipping zero coefficients.
func (s Series) String() string {
	var b strings.Builder
	for k, c := range s.Coefficients {
		if c == 0 {
			continue
		}
		mag := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		coef := strconv.FormatFloat(mag, 'g', -1, 64)
		switch {
		case k == 0:
			b.WriteString(coef)
		case mag == 1:
			b.WriteString(monomial(k))
		default:
			b.WriteString(coef + "*" + monomial(k))
		}
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" + O(" + monomial(len(s.Coefficients)) + ")")

	return b.String()
}

func monomial(k int) string {
	if k == 1 {
		return "x"
	}

	return "x^" + strconv.Itoa(k)
}
