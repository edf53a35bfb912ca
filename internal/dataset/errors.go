package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the dataset path does not exist.
	ErrFileNotFound = errors.New("dataset not found")

	// ErrParse is returned when the dataset is not well-formed delimited text.
	ErrParse = errors.New("invalid csv")
)

// ParseError describes where a dataset failed to parse.
// It matches both ErrParse and the underlying cause under errors.Is.
type ParseError struct {
	Path string // Source file, empty when reading from a stream
	Line int    // 1-based line number, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s line %d: %v", ErrParse, src, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrParse, src, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
