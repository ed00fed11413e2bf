// Package source resolves input identifiers into line streams.
//
// An identifier is either a file path or the sentinel "-", which denotes the
// process's standard input. Streams are read lazily, one line at a time, so
// arbitrarily large files and never-ending pipes are handled without loading
// the whole input into memory.
package source

import (
	"bufio"
	"io"
	"os"

	"github.com/harrison/catr/internal/models"
)

// Resolver opens input identifiers.
type Resolver struct {
	stdin io.Reader
	open  func(name string) (*os.File, error)
}

// NewResolver creates a Resolver that reads stdin for the sentinel
// identifier. The CLI passes the process standard input.
func NewResolver(stdin io.Reader) *Resolver {
	return &Resolver{
		stdin: stdin,
		open:  os.Open,
	}
}

// Resolve returns a Stream for the identifier.
// On failure the returned error is an *OpenError carrying the identifier.
// The caller must Close the stream.
func (r *Resolver) Resolve(identifier string) (*Stream, error) {
	if identifier == models.StdinIdentifier {
		// The process stdin is never closed by us.
		return newStream(identifier, io.NopCloser(r.stdin)), nil
	}

	f, err := r.open(identifier)
	if err != nil {
		return nil, &OpenError{Identifier: identifier, Err: unwrapPathError(err)}
	}
	return newStream(identifier, f), nil
}

// Stream is a buffered, single-pass line stream over one input source.
type Stream struct {
	identifier string
	closer     io.Closer
	reader     *bufio.Reader
	closed     bool
}

func newStream(identifier string, rc io.ReadCloser) *Stream {
	return &Stream{
		identifier: identifier,
		closer:     rc,
		reader:     bufio.NewReader(rc),
	}
}

// Identifier returns the identifier the stream was resolved from.
func (s *Stream) Identifier() string {
	return s.identifier
}

// IsStdin reports whether the stream reads standard input.
func (s *Stream) IsStdin() bool {
	return s.identifier == models.StdinIdentifier
}

// Close releases the underlying resource. It is safe to call more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.closer.Close()
}

// unwrapPathError strips the *os.PathError wrapper so the identifier is not
// repeated in messages; OpenError already carries it.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
