package format

import "fmt"

// ParseError reports malformed input for a specific format. It is a
// recoverable, structured diagnostic: parsers return it instead of
// letting decoding faults escape the component boundary.
type ParseError struct {
	Format Format
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Format, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Format, e.Msg)
}

// Unwrap returns the underlying decode error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError builds a ParseError wrapping err.
func NewParseError(f Format, msg string, err error) *ParseError {
	return &ParseError{Format: f, Msg: msg, Err: err}
}

// UnsupportedFormatError reports a file extension no parser or
// generator recognizes. It is surfaced before any partial work.
type UnsupportedFormatError struct {
	Extension string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q (supported: .drawio, .xml, .excalidraw, .svg)", e.Extension)
}
