package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when classification cannot place a
// document in any supported format.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrEmptyDocument is returned for empty or whitespace-only input.
var ErrEmptyDocument = errors.New("document is empty")

// ParseError reports malformed document syntax. The message preserves
// the underlying decoder diagnostic so callers can surface it verbatim.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse document: " + e.Msg
}

// ValidationError aggregates the issues of a failed validation pass.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	n := 0
	first := ""
	for _, issue := range e.Issues {
		if issue.Severity != SeverityError {
			continue
		}
		if n == 0 {
			first = issue.Message
		}
		n++
	}
	if n == 0 {
		return "validation failed"
	}
	if n == 1 {
		return fmt.Sprintf("validation failed: %s", first)
	}
	return fmt.Sprintf("validation failed: %s (and %d more errors)", first, n-1)
}
