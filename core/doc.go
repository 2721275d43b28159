// Package core defines the shared result, error and trace model used by every
// iterative solver in numerics.
//
// 🚀 What lives here?
//
//	The root finders (package rootfind) and the linear-system solvers
//	(package linsolve) are independent algorithm families, but they report
//	their outcome in exactly the same shape:
//	  • Result[T]   — a tagged outcome: Converged(value, iterations) or
//	                  Failed(kind, iterationsAttempted, err)
//	  • ErrorKind   — the closed taxonomy of failure reasons
//	  • Trace       — ordered per-pass Records under a fixed column Schema
//	  • Options     — tolerance, iteration cap, trace/observer hooks
//	  • Expression  — the single-variable function handle root finders evaluate
//
// ✨ Design rules:
//
//   - No process-wide state: every Result, Trace and Options value is created
//     fresh per call and owned by the caller afterwards.
//   - No I/O: nothing in this package (or in the solvers) prints or logs.
//     Rendering a Trace is the job of package tracesink.
//   - Typed errors: failures are sentinels matched via errors.Is, mapped onto
//     ErrorKind via KindOf.
//
// ⚙️ Usage:
//
//	res, err := rootfind.Bisection(f, 1, 2,
//	    core.WithTolerance(1e-8),
//	    core.WithTrace(),
//	)
//	if err != nil {
//	    switch core.KindOf(err) {
//	    case core.KindNonConvergence:
//	        // caller decides: raise the cap and retry, or give up
//	    }
//	}
//	fmt.Println(res.Value, res.Iterations, res.Trace.Len())
//
// Concurrency:
//
//	All values are plain data. A Trace is not safe for concurrent Append,
//	but a solver call never shares its Trace with anything until it returns.
package core
