// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/numerics/core"
	"github.com/katalvlaran/numerics/internal/logger"
	"github.com/katalvlaran/numerics/tracesink"
)

// EnvPrefix namespaces environment overrides, e.g. NUMERICS_TOLERANCE.
const EnvPrefix = "NUMERICS"

// Configuration keys; each doubles as a persistent flag name.
const (
	keyConfig    = "config"
	keyEnvFile   = "env-file"
	keyLogLevel  = "log-level"
	keyLogFile   = "log-file"
	keyTolerance = "tolerance"
	keyMaxIter   = "max-iter"
	keyTrace     = "trace"
	keyPrecision = "precision"
	keyNoStyle   = "no-style"
	keyReport    = "report"
	keyPlot      = "plot"
)

var (
	errUsage       = errors.New("usage")
	errSolveFailed = errors.New("solve failed")
)

// app carries per-invocation state; tests build a fresh one per command.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
}

// newRootCmd assembles the command tree writing results to out and logs to errOut.
//
// Setting precedence: flag > environment (NUMERICS_*) > .env file > config
// file (numerics.yaml) > built-in default.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "numerics",
		Short: "Iterative root finders and linear solvers",
		Long: `numerics runs classic iterative methods (bisection, false position,
fixed point, Newton-Raphson, secant, Jacobi, Gauss-Seidel) and reports the
result together with a per-iteration trace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default: ./numerics.yaml or ~/.config/numerics/numerics.yaml)")
	pf.String(keyEnvFile, ".env", "dotenv file with NUMERICS_* overrides")
	pf.String(keyLogLevel, "", "log level (debug|info|warn|error) [default: info]")
	pf.String(keyLogFile, "", "write logs to file instead of stderr")
	pf.Float64(keyTolerance, core.DefaultTolerance, "convergence tolerance (> 0)")
	pf.Int(keyMaxIter, 0, "iteration cap (0 = method default)")
	pf.Bool(keyTrace, false, "print the per-iteration trace table")
	pf.Int(keyPrecision, tracesink.DefaultPrecision, "significant digits in the trace table (-1 = shortest exact)")
	pf.Bool(keyNoStyle, false, "disable colours in the trace table")
	pf.String(keyReport, "", "write a YAML run report to this file")
	pf.String(keyPlot, "", "write a convergence chart; format from extension (png|svg|pdf)")

	if err := a.v.BindPFlags(pf); err != nil {
		panic(fmt.Sprintf("numerics: bind flags: %v", err))
	}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.bisectionCmd(),
		a.falsePositionCmd(),
		a.fixedPointCmd(),
		a.newtonCmd(),
		a.secantCmd(),
		a.jacobiCmd(),
		a.gaussSeidelCmd(),
		a.diffCmd(),
		a.maclaurinCmd(),
		a.showCmd(),
		a.plotCmd(),
		versionCmd(),
	)

	return root
}

// initConfig loads the config file and dotenv overrides, then configures logging.
func (a *app) initConfig(cmd *cobra.Command, errOut io.Writer) error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: config %s: %v", errUsage, path, err)
		}
	} else {
		a.v.SetConfigName("numerics")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "numerics"))
		}
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("%w: config: %v", errUsage, err)
			}
		}
	}

	if err := a.loadDotEnv(cmd.Flags()); err != nil {
		return err
	}

	if err := logger.Configure(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFile)); err != nil {
		return fmt.Errorf("%w: log file: %v", errUsage, err)
	}
	if a.v.GetString(keyLogFile) == "" {
		logger.SetOutput(errOut)
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}

	return nil
}

// loadDotEnv applies NUMERICS_* entries of the dotenv file without touching
// the process environment. Real environment variables and explicit flags win.
// A missing file is not an error.
func (a *app) loadDotEnv(flags *pflag.FlagSet) error {
	path := a.v.GetString(keyEnvFile)
	if path == "" {
		return nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: env file %s: %v", errUsage, path, err)
	}

	prefix := EnvPrefix + "_"
	for name, val := range vars {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, prefix)), "_", "-")
		if f := flags.Lookup(key); f != nil && f.Changed {
			continue
		}
		a.v.Set(key, val)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numerics v%s\n", version)
		},
	}
}
