// SPDX-License-Identifier: MIT
package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/expr"
	"github.com/katalvlaran/numerics/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaclaurin_Known compares against textbook expansions.
func TestMaclaurin_Known(t *testing.T) {
	cases := []struct {
		src   string
		terms int
		want  []float64
	}{
		{"exp(x)", 5, []float64{1, 1, 1.0 / 2, 1.0 / 6, 1.0 / 24}},
		{"sin(x)", 6, []float64{0, 1, 0, -1.0 / 6, 0, 1.0 / 120}},
		{"cos(x)", 5, []float64{1, 0, -1.0 / 2, 0, 1.0 / 24}},
		{"ln(1 + x)", 4, []float64{0, 1, -1.0 / 2, 1.0 / 3}},
		{"1/(1 - x)", 5, []float64{1, 1, 1, 1, 1}},
		{"x^3 - 2x + 1", 6, []float64{1, -2, 0, 1, 0, 0}},
		{"atan(x)", 4, []float64{0, 1, 0, -1.0 / 3}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			s, err := expr.Maclaurin(expr.MustParse(tc.src), tc.terms)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, s.Coefficients, 1e-12)
			assert.Equal(t, tc.terms, s.Order())
		})
	}
}

// TestMaclaurin_Errors covers the order bounds and non-analytic inputs.
func TestMaclaurin_Errors(t *testing.T) {
	e := expr.MustParse("exp(x)")
	_, err := expr.Maclaurin(e, 0)
	assert.ErrorIs(t, err, expr.ErrBadOrder)
	_, err = expr.Maclaurin(e, expr.MaxSeriesTerms+1)
	assert.ErrorIs(t, err, expr.ErrBadOrder)

	for _, src := range []string{"ln(x)", "1/x", "sqrt(x)"} {
		_, err = expr.Maclaurin(expr.MustParse(src), 3)
		assert.ErrorIs(t, err, expr.ErrNotAnalytic, src)
	}
}

// TestSeries_EvaluateApproximates checks truncation error near 0.
func TestSeries_EvaluateApproximates(t *testing.T) {
	s, err := expr.Maclaurin(expr.MustParse("exp(x)"), 10)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(0.5), s.Evaluate(0.5), 1e-8)
	assert.Equal(t, 1.0, s.Evaluate(0))
}

// TestSeries_String skips zero terms and prints the truncation order.
func TestSeries_String(t *testing.T) {
	s, err := expr.Maclaurin(expr.MustParse("sin(x)"), 4)
	require.NoError(t, err)
	assert.Equal(t, "x - 0.16666666666666666*x^3 + O(x^4)", s.String())

	assert.Equal(t, "1 + x + 0.5*x^2 + O(x^3)", expr.Series{Coefficients: []float64{1, 1, 0.5}}.String())
	assert.Equal(t, "-2 - x + O(x^2)", expr.Series{Coefficients: []float64{-2, -1}}.String())
	assert.Equal(t, "0 + O(x^2)", expr.Series{Coefficients: []float64{0, 0}}.String())
}

// TestSeries_AsExpression lets Newton run on a Taylor polynomial.
func TestSeries_AsExpression(t *testing.T) {
	s := expr.Series{Coefficients: []float64{-2, 0, 1}} // x² − 2
	d, err := s.Derivative()
	require.NoError(t, err)
	assert.Equal(t, 4.0, d.Evaluate(2))

	dd, _ := d.Derivative()
	ddd, _ := dd.Derivative()
	assert.Equal(t, 0.0, ddd.Evaluate(5))

	res, err := rootfind.NewtonRaphson(s, 1)
	require.NoError(t, err)
	assert.Equal(t, core.StatusConverged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Value, 1e-12)
}
