package source

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// Lines returns a lazy sequence over the stream's lines with the line
// terminator ("\n" or "\r\n") removed. A final line without a terminator is
// still yielded. Iteration stops after the first read error, which is
// yielded as a *ReadError.
//
// The sequence is single-use: a stream that has been drained yields nothing.
func (s *Stream) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := s.reader.ReadString('\n')
			if len(line) > 0 {
				if !yield(trimTerminator(line), nil) {
					return
				}
			}
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) {
				return
			}
			yield("", &ReadError{Identifier: s.identifier, Err: unwrapPathError(err)})
			return
		}
	}
}

// trimTerminator strips "\n" and, only together with it, a preceding "\r".
func trimTerminator(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
