package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument is returned when markup text holds no root element.
	ErrNoDocument = errors.New("no root element")
	// ErrNotOutline is returned when the root element is not opml.
	ErrNotOutline = errors.New("root element is not opml")
	// ErrIncludeCycle is returned when an include refers back to an outline
	// that is already being expanded.
	ErrIncludeCycle = errors.New("include cycle")
	// ErrIncludeDepth is returned when includes nest deeper than allowed.
	ErrIncludeDepth = errors.New("include nesting too deep")
)

// ParseError reports malformed or unusable markup text.
type ParseError struct {
	Line int // 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing outline: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing outline: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FetchError reports a transport failure or a non-success status.
type FetchError struct {
	URL        string
	StatusCode int    // 0 for transport failures
	Reason     string // status text or transport reason
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d %s", e.URL, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IncludeResolutionError wraps the failure met while expanding the include
// that points at URL.
type IncludeResolutionError struct {
	URL string
	Err error
}

func (e *IncludeResolutionError) Error() string {
	return fmt.Sprintf("resolving include %s: %v", e.URL, e.Err)
}

func (e *IncludeResolutionError) Unwrap() error { return e.Err }
