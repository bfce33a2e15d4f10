package pkg

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput      = errors.New("nothing to compress, input is empty")
	ErrEmptyTable      = errors.New("frequency table is empty")
	ErrMalformedTable  = errors.New("malformed frequency table")
	ErrTruncatedStream = errors.New("encoded stream is truncated")
	ErrCorruptStream   = errors.New("encoded stream is corrupt")
)

// IOError reports a failed read or write at the file boundary.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedTable, fmt.Sprintf(format, args...))
}

func truncated(got int, want int64) error {
	return fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedStream, got, want)
}

func corrupt(got int, want int64) error {
	return fmt.Errorf("%w: decoded %d symbols, table expects %d", ErrCorruptStream, got, want)
}
