package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes per-source failure lines to the error stream:
//
//	Failed to open <identifier>: <cause>
//	Failed to read <identifier>: <cause>
//
// Only the "Failed to ..." prefix is coloured, and only on a terminal.
type Reporter struct {
	out    io.Writer
	prefix *color.Color
}

// NewReporter creates a Reporter writing to out.
// Colour is enabled when out is a terminal and NO_COLOR is unset.
func NewReporter(out io.Writer) *Reporter {
	return NewReporterWithColor(out, isColorTerminal(out))
}

// NewReporterWithColor creates a Reporter with explicit colour control.
func NewReporterWithColor(out io.Writer, useColor bool) *Reporter {
	prefix := color.New(color.FgRed, color.Bold)
	if useColor {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return &Reporter{out: out, prefix: prefix}
}

// OpenFailure reports an identifier that could not be opened.
func (r *Reporter) OpenFailure(identifier string, cause error) {
	r.report("Failed to open", identifier, cause)
}

// ReadFailure reports a source that failed while being read.
func (r *Reporter) ReadFailure(identifier string, cause error) {
	r.report("Failed to read", identifier, cause)
}

func (r *Reporter) report(prefix, identifier string, cause error) {
	if r.out == nil {
		return
	}
	fmt.Fprintf(r.out, "%s %s: %v\n", r.prefix.Sprint(prefix), identifier, cause)
}

// isColorTerminal mirrors fatih/color's own detection but for an arbitrary
// writer rather than os.Stdout.
func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
