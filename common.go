package tailio

import (
	"errors"
	"fmt"
)

var ErrIllegalCount error = errors.New("illegal count")
var ErrNoFiles error = errors.New("no input files")

// CountError reports a count argument that does not match [+-]?[0-9]+ or does not fit in an int64.
type CountError struct {
	// Unit is "line" or "byte", empty when unknown
	Unit string
	// Value is the argument exactly as given
	Value string
}

func (e *CountError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("illegal count -- %s", e.Value)
	}
	return fmt.Sprintf("illegal %s count -- %s", e.Unit, e.Value)
}

func (e *CountError) Unwrap() error {
	return ErrIllegalCount
}

// FileError ties a failure to the input it happened on.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Totals holds the result of one full forward scan of a stream.
type Totals struct {
	Lines int64
	Bytes int64
}
