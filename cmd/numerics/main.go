// SPDX-License-Identifier: MIT

// Package main provides the numerics CLI: iterative root finders and
// linear solvers driven from the command line, with tabular traces,
// YAML run reports and convergence charts.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
)

var version = "0.1.0" // set at build time with -ldflags "-X main.version=..."

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1 // the solver ran and reported a failure
	exitUsage  = 2 // bad flags, arguments or configuration
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs one invocation and returns its exit code. The final error is
// logged before the log file is released.
func execute(args []string, out, errOut io.Writer) int {
	defer logger.Close()

	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		logger.Error("numerics", "error", err)
	}

	return exitCode(err)
}

// exitCode maps an execution error onto the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	}
	// Cobra argument errors carry no sentinel and classify as invalid input.
	switch core.KindOf(err) {
	case core.KindParse, core.KindInvalidInput:
		return exitUsage
	default:
		return exitFailed
	}
}
