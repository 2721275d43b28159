// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/tracesink"
)

// loadReport reads a YAML report and rebuilds its trace.
func loadReport(path string) (tracesink.Report, *core.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return tracesink.Report{}, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	defer f.Close()

	rep, err := tracesink.ReadYAML(f)
	if err != nil {
		return tracesink.Report{}, nil, fmt.Errorf("%w: %s: %w", errUsage, path, err)
	}
	tr, err := rep.Trace()
	if err != nil {
		return tracesink.Report{}, nil, fmt.Errorf("%w: %s: %w", errUsage, path, err)
	}

	return rep, tr, nil
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <report.yaml>",
		Short: "Print a saved run report as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rep, tr, err := loadReport(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "run %s: %s %s (%s) iterations=%d error=%.3g\n",
				rep.RunID, rep.Method, rep.Status, rep.Kind, rep.Iterations, rep.Metric)
			if len(rep.Value) > 0 {
				fmt.Fprintf(a.out, "value=%s\n", formatVector(rep.Value, digits(a.v.GetInt(keyPrecision))))
			}
			if rep.Error != "" {
				fmt.Fprintf(a.out, "error: %s\n", rep.Error)
			}
			if tr.Len() > 0 {
				fmt.Fprint(a.out, tracesink.Table(tr,
					tracesink.WithPrecision(digits(a.v.GetInt(keyPrecision))),
					tracesink.WithStyle(!a.v.GetBool(keyNoStyle)),
				))
				fmt.Fprintln(a.out)
			}

			return nil
		},
	}
}

func (a *app) plotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot <chart.png|svg|pdf> <report.yaml>...",
		Short: "Chart the error metric of one or more saved reports",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			traces := make([]*core.Trace, 0, len(args)-1)
			for _, path := range args[1:] {
				_, tr, err := loadReport(path)
				if err != nil {
					return err
				}
				traces = append(traces, tr)
			}
			if err := writeChart(args[0], traces...); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s (%d traces)\n", args[0], len(traces))

			return nil
		},
	}
}
