// Package engine exposes the stable scan/test/variations/detect surface
// as a Go value type, plus a cgo shim for embedding waflex in a
// non-Go host process.
package engine

import "fmt"

// Kind names one of the fixed error categories the engine can raise,
// each mapping onto a stable numeric status code for the C ABI.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindParse
	KindTimeout
	KindInvalidURL
	KindOOM
	KindUnknown
)

// StatusCode returns the numeric code a caller across the FFI boundary
// receives for this Kind. SUCCESS (0) is never a Kind — it means no
// *Error was returned at all.
func (k Kind) StatusCode() int {
	switch k {
	case KindNetwork:
		return 1
	case KindParse:
		return 2
	case KindTimeout:
		return 3
	case KindInvalidURL:
		return 4
	case KindOOM:
		return 5
	default:
		return 99
	}
}

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindTimeout:
		return "timeout"
	case KindInvalidURL:
		return "invalid_url"
	case KindOOM:
		return "oom"
	default:
		return "unknown"
	}
}

// Error is the engine's error hierarchy: every failure a caller sees
// carries a Kind, a human-readable message, and optional structured
// details, per spec.md §7 and §9's re-architecture note.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an *Error of the given kind.
func NewError(kind Kind, message string, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// StatusCode extracts the numeric status code for any error, defaulting
// to UNKNOWN (99) for errors that were not raised by this package, and
// SUCCESS (0) for a nil error.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*Error); ok {
		return e.Kind.StatusCode()
	}
	return KindUnknown.StatusCode()
}
