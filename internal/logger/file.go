package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/catr/internal/filelock"
	"github.com/harrison/catr/internal/models"
)

// latestLink is the symlink in the log directory that points at the newest run log.
const latestLink = "latest.log"

// FileLogger writes one log file per run into a log directory and keeps a
// latest.log symlink pointing at the most recent run. Several catr processes
// may share a log directory; the symlink swap is guarded by a file lock.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir for the run identified by runID.
// It creates the directory if needed, opens run-YYYYMMDD-HHMMSS-<id>.log and
// repoints latest.log at it.
func NewFileLogger(logDir, logLevel, runID string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, shortID(runID)))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatestLink(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== catr Run Log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// updateLatestLink swaps latest.log to point at runFile under an exclusive
// lock on <logDir>/.latest.lock.
func updateLatestLink(logDir, runFile string) error {
	symlinkPath := filepath.Join(logDir, latestLink)
	lockPath := filepath.Join(logDir, ".latest.lock")

	return filelock.WithLock(lockPath, func() error {
		if _, err := os.Lstat(symlinkPath); err == nil {
			if err := os.Remove(symlinkPath); err != nil {
				return fmt.Errorf("failed to remove old symlink: %w", err)
			}
		}
		if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
			return fmt.Errorf("failed to create symlink: %w", err)
		}
		return nil
	})
}

// Path returns the path of this run's log file.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSourceStart logs that a source is about to be read, at TRACE level.
func (fl *FileLogger) LogSourceStart(identifier string) {
	fl.LogTrace(fmt.Sprintf("Reading %s", displayName(identifier)))
}

// LogSourceComplete logs the outcome of one source.
// Unlike the console, successful sources are recorded at INFO level so the
// run log lists every input by default.
func (fl *FileLogger) LogSourceComplete(result models.SourceResult) {
	switch {
	case result.OpenErr != nil:
		fl.LogWarn(fmt.Sprintf("Skipped %s: %v", displayName(result.Identifier), failureCause(result.OpenErr)))
	case result.ReadErr != nil:
		fl.LogWarn(fmt.Sprintf("Stopped %s after %d lines: %v", displayName(result.Identifier), result.Lines, failureCause(result.ReadErr)))
	default:
		fl.LogInfo(fmt.Sprintf("Finished %s: %d lines, %d numbered", displayName(result.Identifier), result.Lines, result.Numbered))
	}
}

// LogSummary logs the run summary with final statistics at INFO level.
func (fl *FileLogger) LogSummary(result models.RunResult) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()

	status := "SUCCESS"
	if failed := result.Failed(); failed > 0 {
		if failed == len(result.Sources) {
			status = "FAILED"
		} else {
			status = "PARTIAL"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s] === RUN SUMMARY ===\n", ts)
	fmt.Fprintf(&b, "[%s] Mode:         %s\n", ts, result.Mode)
	fmt.Fprintf(&b, "[%s] Sources:      %d\n", ts, len(result.Sources))
	fmt.Fprintf(&b, "[%s] Opened:       %d\n", ts, result.Opened())
	fmt.Fprintf(&b, "[%s] Failed:       %d\n", ts, result.Failed())
	fmt.Fprintf(&b, "[%s] Lines:        %d\n", ts, result.TotalLines())
	fmt.Fprintf(&b, "[%s] Total time:   %s\n", ts, formatDuration(result.Duration))
	fmt.Fprintf(&b, "[%s] Status:       %s\n", ts, status)
	if err := result.Err(); err != nil {
		fmt.Fprintf(&b, "[%s] Errors:\n%v\n", ts, err)
	}
	fmt.Fprintf(&b, "[%s] Completed at: %s\n", ts, time.Now().Format(time.RFC3339))

	fl.writeRunLog(b.String())
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
