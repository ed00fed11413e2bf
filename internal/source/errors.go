package source

import "fmt"

// OpenError reports an identifier that could not be opened.
type OpenError struct {
	Identifier string
	Err        error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Identifier, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a stream that failed part way through.
type ReadError struct {
	Identifier string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Identifier, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
