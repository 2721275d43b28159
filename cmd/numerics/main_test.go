package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
)

// run executes the CLI in-process and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	logger.Close()

	return out.String(), errOut.String(), err
}

func TestRootFinders(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"bisection", "x^2 - 2", "1", "2"}, "bisection: root=1.414214134 iterations=20 error=9.54e-07"},
		{[]string{"newton", "x^2 - 2", "1", "--precision", "6"}, "newton-raphson: root=1.41421 iterations=5"},
		{[]string{"secant", "x^2 - 2", "1", "2", "--precision", "6"}, "secant: root=1.41421 iterations=6"},
		{[]string{"falseposition", "x^2 - 2", "1", "2", "--precision", "6"}, "false-position: root=1.41421 iterations=9"},
		{[]string{"fixedpoint", "cos(x)", "1", "--precision", "4"}, "fixed-point: root=0.7391 iterations=34"},
		{[]string{"bisection", "sin(x)", "pi/2", "3pi/2", "--precision", "6"}, "bisection: root=3.14159"},
	}
	for _, tc := range cases {
		t.Run(tc.args[0], func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestTraceTable(t *testing.T) {
	out, _, err := run(t, "newton", "x^2 - 2", "1", "--trace", "--no-style", "--precision", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "f'(x)")
	assert.Contains(t, out, "iteration")
	assert.Contains(t, out, "1.417")
}

func TestSolveFailure(t *testing.T) {
	out, _, err := run(t, "bisection", "x^2 + 1", "0", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSolveFailed)
	assert.ErrorIs(t, err, core.ErrSignCondition)
	assert.Equal(t, exitFailed, exitCode(err))
	assert.Empty(t, out)

	_, _, err = run(t, "newton", "x^2 + 1", "0.5", "--max-iter", "5")
	assert.ErrorIs(t, err, core.ErrNonConvergence)
	assert.Equal(t, exitFailed, exitCode(err))
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"parse":        {"bisection", "x^^2", "1", "2"},
		"tolerance":    {"bisection", "x^2 - 2", "1", "2", "--tolerance", "-1"},
		"max-iter":     {"bisection", "x^2 - 2", "1", "2", "--max-iter", "-2"},
		"arg count":    {"bisection", "x^2 - 2", "1"},
		"bound uses x": {"bisection", "x^2 - 2", "x", "2"},
		"matrix":       {"jacobi", "[[1, 2], [3]]", "[1, 2]"},
		"vector":       {"jacobi", "[[4, 1], [1, 3]]", "oops"},
		"dimension":    {"jacobi", "[[4, 1], [1, 3]]", "[1, 2, 3]"},
		"pivot-eps":    {"jacobi", "[[4, 1], [1, 3]]", "[1, 2]", "--pivot-eps", "-1"},
		"series":       {"maclaurin", "exp(x)", "0"},
		"series frac":  {"maclaurin", "exp(x)", "2.9"},
		"series huge":  {"maclaurin", "exp(x)", "1e30"},
		"series nan":   {"maclaurin", "exp(x)", "0/0"},
		"missing file": {"show", filepath.Join(t.TempDir(), "nope.yaml")},
		"config":       {"--config", filepath.Join(t.TempDir(), "nope.yaml"), "version"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, args...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err), "%v", err)
		})
	}
}

func TestLinearSolvers(t *testing.T) {
	out, _, err := run(t, "jacobi", "[[4, 1], [1, 3]]", "[1, 2]", "--precision", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "jacobi: x=[0.09091 0.6364] iterations=12")

	out, _, err = run(t, "gaussseidel", "[[4, 1], [1, 3]]", "[1, 2]", "--precision", "4", "--trace", "--no-style")
	require.NoError(t, err)
	assert.Contains(t, out, "gauss-seidel: x=[0.09091 0.6364] iterations=7")
	assert.Contains(t, out, "x2")

	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(a, []byte("- [10, -1, 2, 0]\n- [-1, 11, -1, 3]\n- [2, -1, 10, -1]\n- [0, 3, -1, 8]\n"), 0o600))
	out, _, err = run(t, "gauss-seidel", "@"+a, "[6, 25, -11, 15]", "--x0", "[0, 0, 0, 0]", "--precision", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "x=[1 2 -1 1] iterations=8")
}

func TestLinearSolvers_Failures(t *testing.T) {
	_, stderr, err := run(t, "jacobi", "[[1, 2], [3, 1]]", "[1, 2]", "--max-iter", "30")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNonConvergence)
	assert.Equal(t, exitFailed, exitCode(err))
	assert.Contains(t, stderr, "not strictly diagonally dominant")

	_, _, err = run(t, "gaussseidel", "[[0, 1], [1, 3]]", "[1, 2]")
	assert.ErrorIs(t, err, core.ErrSingularDiagonal)
	assert.Equal(t, exitFailed, exitCode(err))
}

func TestReportShowAndPlot(t *testing.T) {
	dir := t.TempDir()
	secant := filepath.Join(dir, "secant.yaml")
	newton := filepath.Join(dir, "newton.yaml")

	_, _, err := run(t, "secant", "x^2 - 2", "1", "2", "--report", secant)
	require.NoError(t, err)
	_, _, err = run(t, "newton", "x^2 - 2", "1", "--report", newton, "--plot", filepath.Join(dir, "newton.svg"))
	require.NoError(t, err)

	data, err := os.ReadFile(secant)
	require.NoError(t, err)
	assert.Contains(t, string(data), "method: secant")
	assert.Contains(t, string(data), "run_id:")

	out, _, err := run(t, "show", secant, "--no-style")
	require.NoError(t, err)
	assert.Contains(t, out, "secant Converged (None) iterations=6")
	assert.Contains(t, out, "x_{i-1}")

	chart := filepath.Join(dir, "compare.png")
	out, _, err = run(t, "plot", chart, secant, newton)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 traces)")
	info, err := os.Stat(chart)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	info, err = os.Stat(filepath.Join(dir, "newton.svg"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, _, err = run(t, "plot", filepath.Join(dir, "chart.gif"), secant)
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestReport_FailedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.yaml")
	_, _, err := run(t, "bisection", "x^2 + 1", "0", "1", "--report", path)
	require.Error(t, err)

	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bisection Failed (SignConditionError) iterations=0")
	assert.Contains(t, out, "does not change sign")
}

func TestSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "numerics.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tolerance: 0.01\n"), 0o600))
	env := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(env, []byte("NUMERICS_TOLERANCE=0.1\nUNRELATED=1\n"), 0o600))

	bisect := func(extra ...string) string {
		var out, errOut bytes.Buffer
		cmd := newRootCmd(&out, &errOut)
		cmd.SetArgs(append([]string{"bisection", "x^2 - 2", "1", "2"}, extra...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	// half-width 2^-i < tol
	assert.Contains(t, bisect("--env-file", "", "--config", cfg), "iterations=7")
	assert.Contains(t, bisect("--env-file", env, "--config", cfg), "iterations=4", ".env beats the config file")
	assert.Contains(t, bisect("--env-file", env, "--tolerance", "0.01"), "iterations=7", "flags beat .env")

	t.Setenv("NUMERICS_TOLERANCE", "0.3")
	assert.Contains(t, bisect("--env-file", env), "iterations=2", "environment beats .env")

	t.Setenv("NUMERICS_MAX_ITER", "1")
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--env-file", "", "bisection", "x^2 - 2", "1", "2"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, core.ErrNonConvergence)
}

func TestDebugLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numerics.log")
	_, _, err := run(t, "bisection", "x^2 - 2", "1", "2", "--log-level", "debug", "--log-file", path, "--max-iter", "3")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	log := string(data)
	assert.Equal(t, 3, strings.Count(log, "pass"), log)
	assert.Contains(t, log, "method=bisection")
	assert.Contains(t, log, "status=Failed")
}

func TestExpressionCommands(t *testing.T) {
	out, _, err := run(t, "diff", "x^2 - 2")
	require.NoError(t, err)
	assert.Equal(t, "2*x\n", out)

	out, _, err = run(t, "diff", "x^2 - 2", "--order", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "maclaurin", "e^x", "3", "--at", "0.1", "--precision", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "1 + x + 0.5*x^2 + O(x^3)\n")
	assert.Contains(t, out, "p(0.1)=1.105 f(0.1)=1.1052")

	out, _, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("numerics v%s\n", version), out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitUsage, exitCode(errUsage))
	assert.Equal(t, exitUsage, exitCode(errors.New("unknown command")))
	assert.Equal(t, exitUsage, exitCode(core.Errorf("Parse", core.ErrParse)))
	assert.Equal(t, exitFailed, exitCode(fmt.Errorf("%w: %w", errSolveFailed, core.ErrZeroDerivative)))
}

func TestExecute_LogsFinalErrorToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numerics.log")
	var out, errOut bytes.Buffer
	code := execute([]string{"--env-file", "", "--log-file", path, "bisection", "x^2 + 1", "0", "1"}, &out, &errOut)
	assert.Equal(t, exitFailed, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ERRO numerics")
	assert.Contains(t, string(data), "does not change sign")
	assert.Empty(t, errOut.String(), "logs go to the file only")

	assert.Equal(t, exitOK, execute([]string{"--env-file", "", "version"}, &out, &errOut))
}

func TestDebugLogging_Styled(t *testing.T) {
	_, stderr, err := run(t, "bisection", "x^2 - 2", "1", "2", "--log-level", "debug", "--max-iter", "3")
	require.Error(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "pass"), stderr)
	assert.Contains(t, stderr, "DEBUG", "styled badge label")
	assert.Contains(t, stderr, "bisection")

	_, stderr, err = run(t, "bisection", "x^2 - 2", "1", "2", "--log-level", "debug", "--max-iter", "3", "--no-style")
	require.Error(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "pass"), stderr)
	assert.NotContains(t, stderr, "DEBUG", "plain logger uses the short level label")
}
