// SPDX-License-Identifier: MIT
package tracesink_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
	"github.com/katalvlaran/numerics/tracesink"
)

// TestPlotConvergence_Formats renders PNG and SVG charts.
func TestPlotConvergence_Formats(t *testing.T) {
	res := bisectionRun(t)

	var png bytes.Buffer
	require.NoError(t, tracesink.PlotConvergence(&png, tracesink.FormatPNG, res.Trace))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, tracesink.PlotConvergence(&svg, tracesink.FormatSVG, res.Trace))
	assert.Contains(t, svg.String(), "<svg")
}

// TestPlotConvergence_Compare draws Jacobi and Gauss–Seidel on one chart.
func TestPlotConvergence_Compare(t *testing.T) {
	A, err := matrix.NewDenseFrom([][]float64{{4, 1}, {1, 3}})
	require.NoError(t, err)
	b := []float64{1, 2}
	j, err := linsolve.Jacobi(A, b, core.WithTrace())
	require.NoError(t, err)
	gs, err := linsolve.GaussSeidel(A, b, core.WithTrace())
	require.NoError(t, err)

	p, err := tracesink.ConvergencePlot("jacobi vs gauss-seidel", j.Trace, gs.Trace)
	require.NoError(t, err)
	assert.Equal(t, "jacobi vs gauss-seidel", p.Title.Text)
	assert.Greater(t, p.Y.Max, p.Y.Min)
	assert.Greater(t, p.Y.Min, 0.0)

	var buf bytes.Buffer
	require.NoError(t, tracesink.PlotConvergence(&buf, tracesink.FormatSVG, j.Trace, gs.Trace))
}

// TestPlotConvergence_Edges covers empty traces, zero metrics and bad formats.
func TestPlotConvergence_Edges(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, tracesink.PlotConvergence(&buf, "gif", bisectionRun(t).Trace), tracesink.ErrUnknownFormat)
	assert.ErrorIs(t, tracesink.PlotConvergence(&buf, tracesink.FormatPNG), tracesink.ErrEmptyTrace)
	assert.ErrorIs(t, tracesink.PlotConvergence(&buf, tracesink.FormatPNG, nil), tracesink.ErrEmptyTrace)

	zero := core.NewTrace(core.Schema{Method: "fixed-point", Columns: []string{"x", "g(x)", "error"}}, 1)
	zero.Append(1, 4.2, 4.2, 0)
	_, err := tracesink.ConvergencePlot("zero", zero)
	assert.ErrorIs(t, err, tracesink.ErrEmptyTrace, "a zero metric cannot sit on a log axis")

	single := core.NewTrace(core.Schema{Method: "one", Columns: []string{"error"}}, 1)
	single.Append(1, 0.5)
	p, err := tracesink.ConvergencePlot("single", single)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p.Y.Min, 1e-15)
	assert.InDelta(t, 5.0, p.Y.Max, 1e-15)
	require.NoError(t, tracesink.PlotConvergence(&buf, tracesink.FormatSVG, single))
}
