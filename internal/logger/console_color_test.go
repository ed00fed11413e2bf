package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harrison/catr/internal/models"
)

func withColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatRunMetrics(t *testing.T) {
	result := models.NewRunResult("id", models.ModeNumberNonblank)
	result.Add(models.SourceResult{Identifier: "a", Lines: 2})

	got := formatRunMetrics(*result)
	want := "mode: number-nonblank, sources: 1, failed: 0, lines: 2"
	if got != want {
		t.Errorf("formatRunMetrics() = %q, want %q", got, want)
	}
}

func TestFormatColorizedRunMetrics(t *testing.T) {
	withColor(t)

	result := models.NewRunResult("id", models.ModePlain)
	result.Add(models.SourceResult{Identifier: "a", Lines: 1})

	got := formatColorizedRunMetrics(*result)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI codes, got %q", got)
	}
	for _, label := range []string{"mode", "sources", "failed", "lines"} {
		if !strings.Contains(got, label) {
			t.Errorf("expected label %q in %q", label, got)
		}
	}
}

func TestFormatColorizedRunMetricsFailuresAreRed(t *testing.T) {
	withColor(t)

	result := models.NewRunResult("id", models.ModePlain)
	result.Add(models.SourceResult{Identifier: "x", OpenErr: errors.New("missing")})

	got := formatColorizedRunMetrics(*result)
	red := color.New(color.FgRed).Sprint("failed")
	if !strings.Contains(got, red) {
		t.Errorf("expected red failed label in %q", got)
	}
}
