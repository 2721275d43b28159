// SPDX-License-Identifier: MIT
package tracesink_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
	"github.com/katalvlaran/numerics/rootfind"
	"github.com/katalvlaran/numerics/tracesink"
)

var sqrt2 = core.FuncWithDerivatives(
	func(x float64) float64 { return x*x - 2 },
	func(x float64) float64 { return 2 * x },
)

// bisectionRun returns a traced, converged bisection on x² − 2 over [1,2].
func bisectionRun(t *testing.T) core.Result[float64] {
	t.Helper()
	res, err := rootfind.Bisection(sqrt2, 1, 2, core.WithTrace())
	require.NoError(t, err)

	return res
}

// TestRows formats iteration then values with the requested precision.
func TestRows(t *testing.T) {
	res := bisectionRun(t)
	rows := tracesink.Rows(res.Trace, tracesink.DefaultPrecision)
	require.Len(t, rows, res.Iterations)
	assert.Equal(t, []string{"1", "1", "2", "1.5", "0.25", "0.5"}, rows[0])
	assert.Equal(t, []string{"2", "1", "1.5", "1.25", "-0.4375", "0.25"}, rows[1])

	short := tracesink.Rows(res.Trace, 3)
	assert.Equal(t, "1.41", short[len(short)-1][3])

	assert.Empty(t, tracesink.Rows(nil, 5))
}

// TestTable renders the schema header and one line per record.
func TestTable(t *testing.T) {
	res := bisectionRun(t)
	out := tracesink.Table(res.Trace, tracesink.WithStyle(false))
	for _, col := range res.Trace.Schema.Header() {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "1.414214134")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, res.Iterations+4, "top border, header, separator, rows, bottom border")

	styled := tracesink.Table(res.Trace)
	assert.Contains(t, styled, "f(mid)")

	empty := tracesink.Table(nil)
	assert.Contains(t, empty, core.IterationColumn)
}

// TestWithPrecision_Panics guards the option constructor.
func TestWithPrecision_Panics(t *testing.T) {
	assert.Panics(t, func() { tracesink.WithPrecision(0) })
	assert.Panics(t, func() { tracesink.WithPrecision(-2) })
	assert.NotPanics(t, func() { tracesink.WithPrecision(-1) })
}

// TestReport_RoundTrip writes and reads back a converged run.
func TestReport_RoundTrip(t *testing.T) {
	res := bisectionRun(t)
	rep := tracesink.NewReport(res)
	_, err := uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, rep.RunID, tracesink.NewReport(res).RunID, "every report gets its own run id")

	var buf bytes.Buffer
	require.NoError(t, tracesink.WriteYAML(&buf, rep))
	text := buf.String()
	assert.Contains(t, text, "method: bisection")
	assert.Contains(t, text, "status: Converged")
	assert.Contains(t, text, "kind: None")
	assert.Contains(t, text, "- [1, 1, 2, 1.5, 0.25, 0.5]")

	back, err := tracesink.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep, back)

	tr, err := back.Trace()
	require.NoError(t, err)
	assert.Equal(t, res.Trace.Schema, tr.Schema)
	assert.Equal(t, res.Trace.Records, tr.Records)
}

// TestReport_Failure keeps NaN metrics and the error text.
func TestReport_Failure(t *testing.T) {
	bad := core.FuncWithDerivatives(func(x float64) float64 { return x*x + 1 })
	res, err := rootfind.Bisection(bad, 0, 1, core.WithTrace())
	require.Error(t, err)

	rep := tracesink.NewReport(res)
	assert.Equal(t, "Failed", rep.Status)
	assert.Equal(t, "SignConditionError", rep.Kind)
	assert.Nil(t, rep.Value)

	var buf bytes.Buffer
	require.NoError(t, tracesink.WriteYAML(&buf, rep))
	assert.Contains(t, buf.String(), "metric: .nan")

	back, err := tracesink.ReadYAML(&buf)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back.Metric))
	assert.Equal(t, rep.Error, back.Error)
	assert.Empty(t, back.Rows)
}

// TestReport_Vector carries the full solution vector.
func TestReport_Vector(t *testing.T) {
	A, err := matrix.NewDenseFrom([][]float64{{4, 1}, {1, 3}})
	require.NoError(t, err)
	res, err := linsolve.GaussSeidel(A, []float64{1, 2}, core.WithTrace())
	require.NoError(t, err)

	rep := tracesink.NewVectorReport(res)
	assert.Equal(t, res.Value, rep.Value)
	assert.Equal(t, []string{"x1", "x2", "error"}, rep.Columns)
	assert.Len(t, rep.Rows, res.Iterations)
	assert.Len(t, rep.Rows[0], 4)
}

// TestReadYAML_Malformed rejects junk and incomplete documents.
func TestReadYAML_Malformed(t *testing.T) {
	_, err := tracesink.ReadYAML(strings.NewReader("rows: [not, numbers]"))
	assert.ErrorIs(t, err, tracesink.ErrMalformedReport)

	_, err = tracesink.ReadYAML(strings.NewReader("method: bisection\n"))
	assert.ErrorIs(t, err, tracesink.ErrMalformedReport)

	rep := tracesink.Report{RunID: "x", Columns: []string{"x", "error"}, Rows: [][]float64{{1, 2}}}
	_, err = rep.Trace()
	assert.ErrorIs(t, err, tracesink.ErrMalformedReport)
}

// TestLogObserver streams one debug line per pass.
func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)

	obs := tracesink.LogObserver(l, rootfind.NewtonRaphsonSchema)
	res, err := rootfind.NewtonRaphson(sqrt2, 1, core.WithObserver(obs))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, res.Iterations)
	assert.Contains(t, lines[0], "method=newton-raphson")
	assert.Contains(t, lines[0], "iteration=1")
	assert.Contains(t, lines[0], "error=0.5")
}
