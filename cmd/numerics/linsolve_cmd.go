// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
)

// linearSolver is the shared signature of Jacobi and GaussSeidel.
type linearSolver func(matrix.Matrix, []float64, ...core.Option) (core.Result[[]float64], error)

const (
	flagX0       = "x0"
	flagPivotEps = "pivot-eps"
)

func (a *app) jacobiCmd() *cobra.Command {
	return a.linearCmd("jacobi <A> <b>", "Jacobi iteration (all components from the previous pass)",
		linsolve.MethodJacobi, linsolve.Jacobi)
}

func (a *app) gaussSeidelCmd() *cobra.Command {
	cmd := a.linearCmd("gaussseidel <A> <b>", "Gauss-Seidel iteration (components updated in place)",
		linsolve.MethodGaussSeidel, linsolve.GaussSeidel)
	cmd.Aliases = []string{"gauss-seidel"}

	return cmd
}

func (a *app) linearCmd(use, short, method string, solve linearSolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `

A is a YAML sequence of rows and b a YAML sequence of numbers, given inline
or as @file:

  numerics jacobi '[[4, 1], [1, 3]]' '[1, 2]'
  numerics gaussseidel @A.yaml @b.yaml --x0 '[0, 0, 0]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := parseVector("b", args[1])
			if err != nil {
				return err
			}
			opts, err := a.solverOptions(linsolve.Schema(method, A.Rows()))
			if err != nil {
				return err
			}

			if src, _ := cmd.Flags().GetString(flagX0); src != "" {
				x0, err := parseVector(flagX0, src)
				if err != nil {
					return err
				}
				opts = append(opts, core.WithInitialGuess(x0))
			}
			if cmd.Flags().Changed(flagPivotEps) {
				eps, _ := cmd.Flags().GetFloat64(flagPivotEps)
				if !(eps >= 0) || math.IsInf(eps, 1) {
					return fmt.Errorf("%w: --%s must be >= 0, got %v", errUsage, flagPivotEps, eps)
				}
				opts = append(opts, core.WithPivotEpsilon(eps))
			}

			if dominant, err := linsolve.IsDiagonallyDominant(A); err == nil && !dominant {
				logger.Warn("matrix is not strictly diagonally dominant; convergence is not guaranteed", "method", method)
			}

			logger.SolveStarted(method, "n", A.Rows())
			logger.Debug("system", "method", method, "A", A.String(), "b", b)
			res, _ := solve(A, b, opts...)
			if res.OK() {
				if r, err := linsolve.Residual(A, res.Value, b); err == nil {
					logger.Info("residual", "method", method, "norm_inf", r)
				}
			}

			return a.emitVector(method, res)
		},
	}
	cmd.Flags().String(flagX0, "", "initial guess as a YAML sequence (default: zero vector)")
	cmd.Flags().Float64(flagPivotEps, core.DefaultPivotEpsilon, "diagonal entries with |a_ii| <= eps are treated as zero")

	return cmd
}
