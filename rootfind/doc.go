// Package rootfind implements five iterative scalar root finders over a
// core.Expression: bisection, false position (regula falsi), fixed-point
// iteration, Newton–Raphson and the secant method.
//
// 🚀 What is a root finder?
//
//	Given a real function f, find x with f(x) ≈ 0. Each method repeats one
//	update rule and stops when its error metric drops below the tolerance:
//	  • Bisection       — halve a sign-change bracket; metric |upper−lower|/2
//	  • FalsePosition   — secant-interpolate inside the bracket; metric |f(root)|
//	  • FixedPoint      — iterate x = g(x); metric |x_{n+1}−x_n|
//	  • NewtonRaphson   — tangent step x − f/f'; metric |x_{n+1}−x_n|
//	  • Secant          — finite-difference Newton; metric |x_{i+1}−x_i|
//
// ✨ Guarantees:
//   - iterations ≤ MaxIterations for every call; the cap is the only run-time bound.
//   - When converged, the metric of the last recorded pass is < Tolerance.
//   - One record per pass is emitted BEFORE that pass's convergence check, so
//     a trace shows exactly the state that was tested.
//   - Numeric hazards (no sign change, f' = 0, zero denominator) are reported
//     as typed failures, never as panics, prints or NaN results.
//
// ⚙️ Usage:
//
//	f, _ := expr.Parse("x^2 - 2")
//	res, err := rootfind.NewtonRaphson(f, 1, core.WithTrace())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Value)       // 1.4142135623746899
//	fmt.Println(res.Trace.Len()) // passes used
//
// Defaults:
//
//	Tolerance      1e-6
//	MaxIterations  50 (Secant: 20)
//
// Concurrency:
//
//	Every function is pure and synchronous; independent calls may run on
//	separate goroutines sharing the same (immutable) Expression.
package rootfind
