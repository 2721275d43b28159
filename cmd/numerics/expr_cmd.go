// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/expr"
)

const flagOrder = "order"

func (a *app) diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <f(x)>",
		Short: "Print the symbolic derivative of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseFunction(args[0])
			if err != nil {
				return err
			}
			order, _ := cmd.Flags().GetInt(flagOrder)
			if order < 1 {
				return fmt.Errorf("%w: --%s must be >= 1, got %d", errUsage, flagOrder, order)
			}
			for i := 0; i < order; i++ {
				e = e.Diff()
			}
			fmt.Fprintln(a.out, e.String())

			return nil
		},
	}
	cmd.Flags().Int(flagOrder, 1, "derivative order")

	return cmd
}

func (a *app) maclaurinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maclaurin <f(x)> [terms]",
		Short: "Expand an expression into its Maclaurin polynomial",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseFunction(args[0])
			if err != nil {
				return err
			}
			terms := 6
			if len(args) == 2 {
				t, err := parseScalar("terms", args[1])
				if err != nil {
					return err
				}
				if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) || math.Abs(t) > expr.MaxSeriesTerms {
					return fmt.Errorf("%w: terms must be an integer in [1, %d], got %s", errUsage, expr.MaxSeriesTerms, args[1])
				}
				terms = int(t)
			}
			s, err := expr.Maclaurin(e, terms)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			fmt.Fprintln(a.out, s.String())

			if at, _ := cmd.Flags().GetString("at"); at != "" {
				x, err := parseScalar("at", at)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "p(%g)=%.*g f(%g)=%.*g\n", x, digits(a.v.GetInt(keyPrecision)), s.Evaluate(x),
					x, digits(a.v.GetInt(keyPrecision)), e.Evaluate(x))
			}

			return nil
		},
	}
	cmd.Flags().String("at", "", "also evaluate the polynomial and the expression at this point")

	return cmd
}
