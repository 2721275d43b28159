// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
	"github.com/katalvlaran/numerics/tracesink"
)

// solverOptions translates the shared settings into core options for a
// method with the given trace schema.
func (a *app) solverOptions(schema core.Schema) ([]core.Option, error) {
	tol := a.v.GetFloat64(keyTolerance)
	if !(tol > 0) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("%w: --%s must be positive and finite, got %v", errUsage, keyTolerance, tol)
	}
	maxIter := a.v.GetInt(keyMaxIter)
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: --%s must be >= 0, got %d", errUsage, keyMaxIter, maxIter)
	}

	opts := []core.Option{core.WithTolerance(tol)}
	if maxIter > 0 {
		opts = append(opts, core.WithMaxIterations(maxIter))
	}
	if a.wantsTrace() {
		opts = append(opts, core.WithTrace())
	}
	if logger.Logger.GetLevel() <= log.DebugLevel {
		opts = append(opts, core.WithObserver(tracesink.LogObserver(a.passLogger(schema.Method), schema)))
	}

	return opts, nil
}

// passLogger picks the per-pass debug logger: the global one when logging to
// a file or with styling off, otherwise a styled logger prefixed by method.
func (a *app) passLogger(method string) *log.Logger {
	if a.v.GetString(keyLogFile) != "" || a.v.GetBool(keyNoStyle) {
		return logger.Logger
	}

	return logger.NewStyledLogger(a.errOut, method)
}

func (a *app) wantsTrace() bool {
	return a.v.GetBool(keyTrace) || a.v.GetString(keyReport) != "" || a.v.GetString(keyPlot) != ""
}

// emitScalar prints a scalar outcome and writes the optional artifacts.
func (a *app) emitScalar(method string, res core.Result[float64]) error {
	logger.SolveFinished(method, res.Status.String(), res.Kind.String(), res.Iterations, res.Metric)
	if res.OK() {
		fmt.Fprintf(a.out, "%s: root=%.*g iterations=%d error=%.3g\n", method, digits(a.v.GetInt(keyPrecision)), res.Value, res.Iterations, res.Metric)
	}

	return a.finish(method, res.Status, res.Err, res.Trace, tracesink.NewReport(res))
}

// emitVector prints a vector outcome and writes the optional artifacts.
func (a *app) emitVector(method string, res core.Result[[]float64]) error {
	logger.SolveFinished(method, res.Status.String(), res.Kind.String(), res.Iterations, res.Metric)
	if res.OK() {
		fmt.Fprintf(a.out, "%s: x=%s iterations=%d error=%.3g\n", method, formatVector(res.Value, digits(a.v.GetInt(keyPrecision))), res.Iterations, res.Metric)
	}

	return a.finish(method, res.Status, res.Err, res.Trace, tracesink.NewVectorReport(res))
}

// finish prints the trace, saves the report and chart, and turns a failed
// status into errSolveFailed.
func (a *app) finish(method string, st core.Status, solveErr error, tr *core.Trace, rep tracesink.Report) error {
	if a.v.GetBool(keyTrace) && tr.Len() > 0 {
		fmt.Fprint(a.out, tracesink.Table(tr,
			tracesink.WithPrecision(digits(a.v.GetInt(keyPrecision))),
			tracesink.WithStyle(!a.v.GetBool(keyNoStyle)),
		))
		fmt.Fprintln(a.out)
	}

	if path := a.v.GetString(keyReport); path != "" {
		if rep.Method == "" {
			rep.Method = method
		}
		if err := writeFile(path, func(f *os.File) error { return tracesink.WriteYAML(f, rep) }); err != nil {
			return err
		}
		logger.Info("report written", "file", path, "run_id", rep.RunID)
	}

	if path := a.v.GetString(keyPlot); path != "" && tr.Len() > 0 {
		if err := writeChart(path, tr); err != nil {
			return err
		}
		logger.Info("chart written", "file", path)
	}

	if st != core.StatusConverged {
		return fmt.Errorf("%w: %w", errSolveFailed, solveErr)
	}

	return nil
}

// writeChart renders traces to path in the format named by its extension.
func writeChart(path string, traces ...*core.Trace) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch format {
	case tracesink.FormatPNG, tracesink.FormatSVG, tracesink.FormatPDF:
	default:
		return fmt.Errorf("%w: chart %s: extension must be .png, .svg or .pdf: %w", errUsage, path, tracesink.ErrUnknownFormat)
	}

	return writeFile(path, func(f *os.File) error { return tracesink.PlotConvergence(f, format, traces...) })
}

// writeFile creates path and hands it to write, reporting the first error.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func digits(p int) int {
	if p == 0 || p < -1 {
		return tracesink.DefaultPrecision
	}

	return p
}

func formatVector(v []float64, precision int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.*g", precision, x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
