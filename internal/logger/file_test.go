package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/catr/internal/models"
)

func readLatest(t *testing.T, logDir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, latestLink))
	if err != nil {
		t.Fatalf("failed to read latest.log: %v", err)
	}
	return string(data)
}

func TestNewFileLoggerCreatesRunLog(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, "info", "abcdef0123456789")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	base := filepath.Base(fl.Path())
	if !strings.HasPrefix(base, "run-") || !strings.HasSuffix(base, "-abcdef01.log") {
		t.Errorf("unexpected run log name %q", base)
	}

	target, err := os.Readlink(filepath.Join(logDir, latestLink))
	if err != nil {
		t.Fatalf("latest.log should be a symlink: %v", err)
	}
	if target != base {
		t.Errorf("latest.log -> %q, want %q", target, base)
	}

	content := readLatest(t, logDir)
	if !strings.Contains(content, "=== catr Run Log ===") {
		t.Error("expected header in run log")
	}
	if !strings.Contains(content, "Run ID: abcdef0123456789") {
		t.Error("expected run ID in run log")
	}
}

func TestFileLoggerRepointsLatest(t *testing.T) {
	logDir := t.TempDir()

	first, err := NewFileLogger(logDir, "info", "11111111-run")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	first.Close()

	second, err := NewFileLogger(logDir, "info", "22222222-run")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer second.Close()

	if !strings.Contains(readLatest(t, logDir), "Run ID: 22222222-run") {
		t.Error("latest.log should point at the newest run")
	}
}

func TestFileLoggerEventsAndSummary(t *testing.T) {
	logDir := t.TempDir()
	fl, err := NewFileLogger(logDir, "info", "run-id")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	fl.LogSourceStart("a.txt") // trace, filtered
	fl.LogSourceComplete(models.SourceResult{Identifier: "a.txt", Lines: 2, Numbered: 1})
	fl.LogSourceComplete(models.SourceResult{
		Identifier: "gone",
		OpenErr:    fmt.Errorf("failed to open gone: %w", errors.New("no such file or directory")),
	})

	result := models.NewRunResult("run-id", models.ModeNumberNonblank)
	result.Add(models.SourceResult{Identifier: "a.txt", Lines: 2, Numbered: 1})
	result.Add(models.SourceResult{Identifier: "gone", OpenErr: errors.New("no such file or directory")})
	fl.LogSummary(*result)

	if err := fl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content := readLatest(t, logDir)
	if strings.Contains(content, "failed to open gone") {
		t.Error("the run log should record the cause without repeating the identifier")
	}
	if strings.Contains(content, "Reading a.txt") {
		t.Error("trace message should be filtered at info level")
	}
	for _, want := range []string{
		"[INFO] Finished a.txt: 2 lines, 1 numbered",
		"[WARN] Skipped gone: no such file or directory",
		"=== RUN SUMMARY ===",
		"Mode:         number-nonblank",
		"Sources:      2",
		"Failed:       1",
		"Status:       PARTIAL",
		"Errors:",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in run log:\n%s", want, content)
		}
	}
}

func TestFileLoggerSummaryStatus(t *testing.T) {
	tests := []struct {
		name    string
		sources []models.SourceResult
		want    string
	}{
		{name: "success", sources: []models.SourceResult{{Identifier: "a"}}, want: "SUCCESS"},
		{name: "all-failed", sources: []models.SourceResult{{Identifier: "a", OpenErr: errors.New("x")}}, want: "FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logDir := t.TempDir()
			fl, err := NewFileLogger(logDir, "info", tt.name)
			if err != nil {
				t.Fatalf("NewFileLogger() error = %v", err)
			}
			result := models.NewRunResult(tt.name, models.ModePlain)
			for _, s := range tt.sources {
				result.Add(s)
			}
			fl.LogSummary(*result)
			fl.Close()

			if !strings.Contains(readLatest(t, logDir), "Status:       "+tt.want) {
				t.Errorf("expected status %s", tt.want)
			}
		})
	}
}

func TestFileLoggerCloseTwice(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info", "id")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	fl.LogInfo("after close is dropped")
}

func TestNewFileLoggerBadDirectory(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLogger(filepath.Join(parent, "logs"), "info", "id"); err == nil {
		t.Error("expected error when log dir cannot be created")
	}
}
