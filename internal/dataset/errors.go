package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound matches any SourceNotFoundError.
	ErrSourceNotFound = errors.New("source not found")
	// ErrSourceFormat matches any SourceFormatError.
	ErrSourceFormat = errors.New("malformed source")
)

// SourceNotFoundError is returned when the source file is absent or cannot be read.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %q not found or unreadable: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source %q not found or unreadable", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// SourceFormatError is returned when a sheet lacks a country column or any
// year columns, or when the workbook has no indicator sheets at all.
type SourceFormatError struct {
	Path   string
	Sheet  string
	Reason string
}

func (e *SourceFormatError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("source %q: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("source %q, sheet %q: %s", e.Path, e.Sheet, e.Reason)
}

func (e *SourceFormatError) Is(target error) bool {
	return target == ErrSourceFormat
}
