// Package logger provides logging implementations for catr runs.
//
// Loggers record how each input source was handled and summarise the run.
// They never write to standard output, which belongs to the concatenated
// text. Implementations are thread-safe and filter messages by level.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/catr/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs run progress to a writer (normally os.Stderr).
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// This will return false if NO_COLOR env var is set
		return !color.NoColor
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}

	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// LogSourceStart logs that a source is about to be read, at TRACE level.
func (cl *ConsoleLogger) LogSourceStart(identifier string) {
	cl.LogTrace(fmt.Sprintf("Reading %s", displayName(identifier)))
}

// LogSourceComplete logs the outcome of one source.
// Failures are logged at INFO level since the reporter already prints them.
// Successes are logged at DEBUG level.
func (cl *ConsoleLogger) LogSourceComplete(result models.SourceResult) {
	switch {
	case result.OpenErr != nil:
		cl.LogInfo(fmt.Sprintf("Skipped %s: %v", displayName(result.Identifier), failureCause(result.OpenErr)))
	case result.ReadErr != nil:
		cl.LogInfo(fmt.Sprintf("Stopped %s after %d lines: %v", displayName(result.Identifier), result.Lines, failureCause(result.ReadErr)))
	default:
		cl.LogDebug(fmt.Sprintf("Finished %s: %d lines, %d numbered", displayName(result.Identifier), result.Lines, result.Numbered))
	}
}

// LogSummary logs the run summary at INFO level.
// Format: "[HH:MM:SS] [INFO] Run <id> complete (<duration>): sources: N, failed: N, lines: N"
func (cl *ConsoleLogger) LogSummary(result models.RunResult) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	var metrics string
	if cl.colorOutput {
		metrics = formatColorizedRunMetrics(result)
	} else {
		metrics = formatRunMetrics(result)
	}

	cl.LogInfo(fmt.Sprintf("Run %s complete (%s): %s", shortID(result.RunID), formatDuration(result.Duration), metrics))
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// failureCause strips the source error wrapper, whose text already names the
// identifier, leaving the underlying cause.
func failureCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}

// displayName renders the stdin sentinel readably in log messages.
func displayName(identifier string) string {
	if identifier == models.StdinIdentifier {
		return "<stdin>"
	}
	return identifier
}

// shortID returns the first eight characters of a run ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "350ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger discards every event. It is the orchestrator's logger when
// none is supplied.
type NoOpLogger struct{}

// LogSourceStart is a no-op implementation.
func (NoOpLogger) LogSourceStart(identifier string) {}

// LogSourceComplete is a no-op implementation.
func (NoOpLogger) LogSourceComplete(result models.SourceResult) {}

// LogSummary is a no-op implementation.
func (NoOpLogger) LogSummary(result models.RunResult) {}
