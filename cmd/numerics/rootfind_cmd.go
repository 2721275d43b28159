// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
	"github.com/katalvlaran/numerics/rootfind"
)

// bracketSolver is the shared signature of Bisection and FalsePosition.
type bracketSolver func(core.Expression, float64, float64, ...core.Option) (core.Result[float64], error)

// pointSolver is the shared signature of FixedPoint and NewtonRaphson.
type pointSolver func(core.Expression, float64, ...core.Option) (core.Result[float64], error)

func (a *app) bisectionCmd() *cobra.Command {
	return a.bracketCmd("bisection <f(x)> <lower> <upper>", "Halve a sign-change bracket until its half-width drops below the tolerance",
		rootfind.BisectionSchema, rootfind.Bisection)
}

func (a *app) falsePositionCmd() *cobra.Command {
	cmd := a.bracketCmd("falseposition <f(x)> <lower> <upper>", "Regula falsi: interpolate inside the bracket until |f(root)| < tolerance",
		rootfind.FalsePositionSchema, rootfind.FalsePosition)
	cmd.Aliases = []string{"false-position", "regula-falsi"}

	return cmd
}

func (a *app) fixedPointCmd() *cobra.Command {
	cmd := a.pointCmd("fixedpoint <g(x)> <x0>", "Iterate x = g(x) until successive iterates agree",
		rootfind.FixedPointSchema, rootfind.FixedPoint)
	cmd.Aliases = []string{"fixed-point"}

	return cmd
}

func (a *app) newtonCmd() *cobra.Command {
	cmd := a.pointCmd("newton <f(x)> <x0>", "Newton-Raphson with a symbolically derived f'",
		rootfind.NewtonRaphsonSchema, rootfind.NewtonRaphson)
	cmd.Aliases = []string{"newton-raphson"}

	return cmd
}

func (a *app) secantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secant <f(x)> <x_prev> <x0>",
		Short: "Secant method from two starting points",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := parseFunction(args[0])
			if err != nil {
				return err
			}
			xPrev, err := parseScalar("x_prev", args[1])
			if err != nil {
				return err
			}
			x0, err := parseScalar("x0", args[2])
			if err != nil {
				return err
			}
			opts, err := a.solverOptions(rootfind.SecantSchema)
			if err != nil {
				return err
			}

			logger.SolveStarted(rootfind.SecantSchema.Method, "f", f.String(), "x_prev", xPrev, "x0", x0)
			res, _ := rootfind.Secant(f, xPrev, x0, opts...)

			return a.emitScalar(rootfind.SecantSchema.Method, res)
		},
	}
}

func (a *app) bracketCmd(use, short string, schema core.Schema, solve bracketSolver) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := parseFunction(args[0])
			if err != nil {
				return err
			}
			lower, err := parseScalar("lower", args[1])
			if err != nil {
				return err
			}
			upper, err := parseScalar("upper", args[2])
			if err != nil {
				return err
			}
			opts, err := a.solverOptions(schema)
			if err != nil {
				return err
			}

			logger.SolveStarted(schema.Method, "f", f.String(), "lower", lower, "upper", upper)
			res, _ := solve(f, lower, upper, opts...)

			return a.emitScalar(schema.Method, res)
		},
	}
}

func (a *app) pointCmd(use, short string, schema core.Schema, solve pointSolver) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := parseFunction(args[0])
			if err != nil {
				return err
			}
			x0, err := parseScalar("x0", args[1])
			if err != nil {
				return err
			}
			opts, err := a.solverOptions(schema)
			if err != nil {
				return err
			}

			logger.SolveStarted(schema.Method, "f", f.String(), "x0", x0)
			res, _ := solve(f, x0, opts...)

			return a.emitScalar(schema.Method, res)
		},
	}
}
