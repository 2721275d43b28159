// SPDX-License-Identifier: MIT

package tracesink

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numerics/core"
)

// Chart formats accepted by PlotConvergence.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Chart size defaults.
const (
	DefaultChartWidth  = 6 * vg.Inch
	DefaultChartHeight = 4 * vg.Inch
)

// ConvergencePlot builds an error-vs-iteration chart, one line per trace,
// using the last column (the stopping metric) of each record.
//
// Implementation:
//   - Stage 1: collect (iteration, metric) pairs; non-finite and non-positive
//     metrics are skipped (a log axis cannot show them).
//   - Stage 2: one line per trace on a log10 error axis, named by the
//     trace's method; a single-valued range is widened one decade each way.
//
// Errors: ErrEmptyTrace when no trace contributes a point.
//
// Complexity: O(total records).
func ConvergencePlot(title string, traces ...*core.Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = core.IterationColumn
	p.Y.Label.Text = core.ErrorColumn
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var (
		lines  []interface{}
		total  int
		lo, hi = math.Inf(1), math.Inf(-1)
	)
	for i, tr := range traces {
		pts := metricPoints(tr)
		if len(pts) == 0 {
			continue
		}
		total += len(pts)
		for _, pt := range pts {
			lo, hi = math.Min(lo, pt.Y), math.Max(hi, pt.Y)
		}
		name := tr.Schema.Method
		if name == "" {
			name = fmt.Sprintf("trace %d", i+1)
		}
		lines = append(lines, name, pts)
	}
	if total == 0 {
		return nil, ErrEmptyTrace
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, fmt.Errorf("tracesink: add lines: %w", err)
	}
	p.Legend.Top = true
	if lo == hi {
		lo, hi = lo/10, hi*10
	}
	p.Y.Min, p.Y.Max = lo, hi

	return p, nil
}

// PlotConvergence renders ConvergencePlot into w in the given format
// (FormatPNG, FormatSVG or FormatPDF) at the default size.
func PlotConvergence(w io.Writer, format string, traces ...*core.Trace) error {
	switch format {
	case FormatPNG, FormatSVG, FormatPDF:
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	title := "convergence"
	if len(traces) == 1 && traces[0] != nil && traces[0].Schema.Method != "" {
		title = traces[0].Schema.Method + " convergence"
	}
	p, err := ConvergencePlot(title, traces...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultChartWidth, DefaultChartHeight, format)
	if err != nil {
		return fmt.Errorf("tracesink: render %s: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("tracesink: write %s: %w", format, err)
	}

	return nil
}

// metricPoints extracts (iteration, metric) for the positive finite metrics of tr.
func metricPoints(tr *core.Trace) plotter.XYs {
	if tr.Len() == 0 {
		return nil
	}
	pts := make(plotter.XYs, 0, tr.Len())
	for _, rec := range tr.Records {
		m := rec.Metric()
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(rec.Iteration), Y: m})
	}

	return pts
}
