package render

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Writer buffers rendered output. When the destination is an interactive
// terminal every line is flushed as soon as it is written, so a user typing
// into stdin sees each line echoed immediately.
type Writer struct {
	buf         *bufio.Writer
	flushOnLine bool
}

// NewWriter wraps w. Line flushing is enabled when w is a terminal.
func NewWriter(w io.Writer) *Writer {
	return NewWriterWithLineFlush(w, isTerminal(w))
}

// NewWriterWithLineFlush wraps w with explicit control over per-line flushing.
func NewWriterWithLineFlush(w io.Writer, flushOnLine bool) *Writer {
	return &Writer{
		buf:         bufio.NewWriter(w),
		flushOnLine: flushOnLine,
	}
}

// SetLineFlush turns per-line flushing on or off.
func (w *Writer) SetLineFlush(on bool) {
	w.flushOnLine = on
}

// LineFlush reports whether every line is flushed immediately.
func (w *Writer) LineFlush() bool {
	return w.flushOnLine
}

// Flush writes any buffered data to the destination.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

func (w *Writer) endLine() error {
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	if w.flushOnLine {
		return w.buf.Flush()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
