// Package render applies the line-numbering policy to a stream of lines.
//
// Numbered lines are written as the counter right-aligned in a six character
// field, a tab, then the line text. Unnumbered lines are written verbatim.
// Every output line ends with "\n".
package render

import (
	"fmt"
	"iter"

	"github.com/harrison/catr/internal/models"
)

// numberWidth is the width of the right-aligned counter field.
const numberWidth = 6

// Stats counts what Render wrote.
type Stats struct {
	Lines    int // Lines written
	Numbered int // Lines written with a counter prefix
}

// WriteError reports a failure to write to the output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Renderer writes lines to a Writer according to a Mode.
type Renderer struct {
	out *Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out *Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes every line of the sequence using mode, advancing counter for
// each numbered line. A read error from the sequence stops rendering and is
// returned as is; write failures are returned as *WriteError. Stats always
// reflects the lines written before the error.
func (r *Renderer) Render(lines iter.Seq2[string, error], counter *Counter, mode models.Mode) (Stats, error) {
	var stats Stats
	for line, err := range lines {
		if err != nil {
			return stats, err
		}

		numbered, err := r.writeLine(line, counter, mode)
		if err != nil {
			return stats, &WriteError{Err: err}
		}
		stats.Lines++
		if numbered {
			stats.Numbered++
		}
	}
	return stats, nil
}

// writeLine emits one line and reports whether it carried a number.
func (r *Renderer) writeLine(line string, counter *Counter, mode models.Mode) (bool, error) {
	numbered := false
	switch mode {
	case models.ModeNumberAll:
		numbered = true
	case models.ModeNumberNonblank:
		numbered = line != ""
	}

	if numbered {
		if err := r.writeNumber(counter.advance()); err != nil {
			return false, err
		}
	}
	if _, err := r.out.buf.WriteString(line); err != nil {
		return false, err
	}
	return numbered, r.out.endLine()
}

// writeNumber writes n right-aligned in numberWidth columns followed by a tab.
func (r *Renderer) writeNumber(n int) error {
	_, err := fmt.Fprintf(r.out.buf, "%*d\t", numberWidth, n)
	return err
}
