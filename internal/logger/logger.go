// SPDX-License-Identifier: MIT

// Package logger provides centralized logging for the numerics CLI.
// Library packages never log; only cmd/numerics writes through here.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLogLevel is consulted when no level is given on the command line.
const EnvLogLevel = "NUMERICS_LOG_LEVEL"

// Logger is the global logger instance used by the CLI.
var Logger *log.Logger

// logFile is the currently open log file, if any.
var logFile *os.File

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets the level and destination.
// Level precedence: argument > NUMERICS_LOG_LEVEL > "info".
// A non-empty file is opened in append mode and replaces stderr.
func Configure(logLevel string, file string) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv(EnvLogLevel))
	}

	var output io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		Close()
		logFile = f
		output = f
	}

	SetOutput(output)
	Logger.SetLevel(ParseLevel(level))

	return nil
}

// SetOutput replaces the logger with one writing to w, keeping the level.
func SetOutput(w io.Writer) {
	level := log.InfoLevel
	if Logger != nil {
		level = Logger.GetLevel()
	}
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(level)
}

// Close releases the log file opened by Configure, if any.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// ParseLevel converts a level name to a log.Level; unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// SolveStarted logs the parameters of a solver invocation.
func SolveStarted(method string, params ...interface{}) {
	Info("solve", append([]interface{}{"method", method}, params...)...)
}

// SolveFinished logs the outcome of a solver invocation.
func SolveFinished(method, status, kind string, iterations int, metric float64) {
	Info("done", "method", method, "status", status, "kind", kind, "iterations", iterations, "metric", metric)
}

// NewStyledLogger creates a component logger with badge-style level labels
// and the given prefix, writing to w at the global logger's level.
func NewStyledLogger(w io.Writer, prefix string) *log.Logger {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = badge("DEBUG", "240")
	styles.Levels[log.InfoLevel] = badge("INFO", "33")
	styles.Levels[log.WarnLevel] = badge("WARN", "214")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "196")
	styles.Levels[log.FatalLevel] = badge("FATAL", "88")

	styles.Keys["method"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["method"] = lipgloss.NewStyle().Bold(true)

	l := log.NewWithOptions(w, log.Options{Prefix: prefix})
	l.SetStyles(styles)
	l.SetLevel(Logger.GetLevel())

	return l
}

func badge(label, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("15"))
}
