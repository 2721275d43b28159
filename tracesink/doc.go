// SPDX-License-Identifier: MIT

// Package tracesink turns a core.Trace into something a person can read:
// a styled terminal table, a YAML report, a convergence chart, or a stream
// of log lines while the solver runs.
//
// Every sink is driven by the trace's Schema alone (header = iteration +
// Columns, one row per Record), so no sink knows which algorithm produced
// the records.
//
//	res, _ := rootfind.Bisection(f, 1, 2, core.WithTrace())
//	fmt.Println(tracesink.Table(res.Trace))
//	_ = tracesink.WriteYAML(os.Stdout, tracesink.NewReport(res))
//	_ = tracesink.PlotConvergence(file, tracesink.FormatPNG, res.Trace)
package tracesink
