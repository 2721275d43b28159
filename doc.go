// Package numerics is a small toolkit of classic iterative numerical
// methods with inspectable, typed outcomes.
//
// 🚀 What is numerics?
//
//	A library (plus a CLI) that runs textbook iterations and tells you
//	exactly what happened on every pass:
//		• Root finding: bisection, false position, fixed point, Newton–Raphson, secant
//		• Linear systems: Jacobi and Gauss–Seidel
//		• Expressions: parse "x^2 - 2", differentiate symbolically, Maclaurin series
//		• Traces: per-iteration records as tables, YAML reports and convergence charts
//
// ✨ Why numerics?
//
//   - Typed results – Converged/Failed plus an ErrorKind, never a panic or a print
//   - Bounded work – every call stops at MaxIterations, whatever f looks like
//   - Traces on demand – collect them, stream them through an observer, or both
//   - Pure functions – no global state in the library packages
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — Result, ErrorKind, Options, Trace/Recorder, Expression
//	rootfind/   — the five scalar root finders
//	linsolve/   — Jacobi, Gauss–Seidel, residual and dominance diagnostics
//	matrix/     — Matrix interface, Dense storage, validators, MatVec
//	expr/       — expression parser, symbolic derivative, Maclaurin series
//	tracesink/  — tables (lipgloss), YAML reports, charts (gonum/plot), log observer
//	cmd/numerics — the command-line front end
//
// Quick example:
//
//	f := expr.MustParse("x^2 - 2")
//	res, err := rootfind.NewtonRaphson(f, 1, core.WithTrace())
//	// res.Value ≈ 1.414213562, res.Iterations == 5, res.Trace.Len() == 5
//
//	go install github.com/katalvlaran/numerics/cmd/numerics@latest
package numerics
