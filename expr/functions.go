// SPDX-License-Identifier: MIT

package expr

import "math"

// function is a named elementary function with its outer derivative.
type function struct {
	name  string
	eval  func(float64) float64
	deriv func(u node) node // f'(u); the chain factor u' is applied by call.diff
}

var functions map[string]*function

func init() {
	fns := []*function{
		{name: "sin", eval: math.Sin, deriv: func(u node) node { return call{fn: functions["cos"], arg: u} }},
		{name: "cos", eval: math.Cos, deriv: func(u node) node { return negate(call{fn: functions["sin"], arg: u}) }},
		{name: "tan", eval: math.Tan, deriv: func(u node) node {
			// 1/cos²(u)
			return div(num{1}, pow(call{fn: functions["cos"], arg: u}, num{2}))
		}},
		{name: "atan", eval: math.Atan, deriv: func(u node) node { return div(num{1}, add(num{1}, pow(u, num{2}))) }},
		{name: "exp", eval: math.Exp, deriv: func(u node) node { return call{fn: functions["exp"], arg: u} }},
		{name: "ln", eval: math.Log, deriv: func(u node) node { return div(num{1}, u) }},
		{name: "sqrt", eval: math.Sqrt, deriv: func(u node) node {
			return div(num{1}, mul(num{2}, call{fn: functions["sqrt"], arg: u}))
		}},
		{name: "abs", eval: math.Abs, deriv: func(u node) node { return call{fn: functions["sign"], arg: u} }},
		{name: "sign", eval: sign, deriv: func(node) node { return num{0} }},
	}
	functions = make(map[string]*function, len(fns)+1)
	for _, f := range fns {
		functions[f.name] = f
	}
	functions["log"] = functions["ln"]
}

// sign returns −1, 0 or +1 (NaN stays NaN).
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return v
}

// constants recognized by the parser.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
