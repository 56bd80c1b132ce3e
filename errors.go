package datatask

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error kinds
// -----------------------------------------------------------------------------

// Kind classifies a construction failure.
type Kind string

const (
	// KindType marks a field or sub-value with the wrong structural type.
	KindType Kind = "TYPE_ERROR"
	// KindValue marks a well-typed field that violates a presence or
	// cardinality rule.
	KindValue Kind = "VALUE_ERROR"
	// KindSyntax marks text that could not be decoded at all.
	KindSyntax Kind = "SYNTAX_ERROR"
)

// -----------------------------------------------------------------------------
// Error
// -----------------------------------------------------------------------------

// Error represents a failure to construct a data task.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewTypeError creates an Error of kind KindType.
func NewTypeError(message string) *Error {
	return &Error{
		Kind:    KindType,
		Message: message,
	}
}

// NewValueError creates an Error of kind KindValue.
func NewValueError(message string) *Error {
	return &Error{
		Kind:    KindValue,
		Message: message,
	}
}

// WrapSyntaxError wraps a decoder error with an Error of kind KindSyntax.
func WrapSyntaxError(message string, err error) *Error {
	return &Error{
		Kind:    KindSyntax,
		Message: message,
		Err:     err,
	}
}

// -----------------------------------------------------------------------------
// Predicates
// -----------------------------------------------------------------------------

func isKind(err error, kind Kind) bool {
	var taskErr *Error
	if errors.As(err, &taskErr) {
		return taskErr.Kind == kind
	}
	return false
}

// IsTypeError reports whether err is an Error of kind KindType.
func IsTypeError(err error) bool {
	return isKind(err, KindType)
}

// IsValueError reports whether err is an Error of kind KindValue.
func IsValueError(err error) bool {
	return isKind(err, KindValue)
}

// IsSyntaxError reports whether err is an Error of kind KindSyntax.
func IsSyntaxError(err error) bool {
	return isKind(err, KindSyntax)
}
