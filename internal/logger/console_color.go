package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/catr/internal/models"
)

// colorScheme defines consistent colors for run metrics.
// Green: success, Red: failure, Cyan: labels.
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	label   *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatRunMetrics formats run metrics without color.
// Format: "mode: M, sources: N, failed: N, lines: N"
func formatRunMetrics(result models.RunResult) string {
	return fmt.Sprintf("mode: %s, sources: %d, failed: %d, lines: %d",
		result.Mode, len(result.Sources), result.Failed(), result.TotalLines())
}

// formatColorizedRunMetrics formats the same metrics as formatRunMetrics
// with a colored label and value per metric. The failed count is red when
// non-zero and green otherwise.
func formatColorizedRunMetrics(result models.RunResult) string {
	scheme := newColorScheme()

	parts := []string{
		formatColorizedMetric("mode", result.Mode, scheme.label, scheme.value),
		formatColorizedMetric("sources", len(result.Sources), scheme.label, scheme.value),
	}

	failed := result.Failed()
	if failed > 0 {
		parts = append(parts, formatColorizedMetric("failed", failed, scheme.fail, scheme.fail))
	} else {
		parts = append(parts, formatColorizedMetric("failed", failed, scheme.label, scheme.success))
	}

	parts = append(parts, formatColorizedMetric("lines", result.TotalLines(), scheme.label, scheme.value))

	return strings.Join(parts, ", ")
}

// formatColorizedMetric formats "label: value" with the given colors.
func formatColorizedMetric(label string, value interface{}, labelColor, valueColor *color.Color) string {
	return fmt.Sprintf("%s: %s", labelColor.Sprint(label), valueColor.Sprintf("%v", value))
}
