package argparse

import (
	"fmt"
)

// ErrorType categorizes parse and definition failures for programmatic handling
type ErrorType string

const (
	// ErrorTypeDefinition covers malformed element definitions: bad
	// shorthand, bad names and aliases, collisions, conflicting element
	// switches, and undefined constraint references
	ErrorTypeDefinition ErrorType = "definition_error"

	// ErrorTypeOption covers malformed global options
	ErrorTypeOption ErrorType = "option_error"

	// ErrorTypeUnknownSwitch is reported for a switch token that matches no
	// element name, alias, or unambiguous prefix
	ErrorTypeUnknownSwitch ErrorType = "unknown_switch"

	// ErrorTypeMissingRequired is reported when required switches or
	// parameters are absent
	ErrorTypeMissingRequired ErrorType = "missing_required"

	// ErrorTypeMissingValue is reported when a switch expects an argument
	// that is not supplied
	ErrorTypeMissingValue ErrorType = "missing_value"

	// ErrorTypeSurplus is reported for unexpected arguments: an inline value
	// on a switch that takes none, or positional arguments nothing can absorb
	ErrorTypeSurplus ErrorType = "surplus_argument"

	// ErrorTypeConstraint is reported for require/forbid/allow violations
	ErrorTypeConstraint ErrorType = "constraint_violation"

	// ErrorTypeValidation is reported when a value fails enumeration
	// membership or a validation predicate
	ErrorTypeValidation ErrorType = "validation_failed"

	// ErrorTypeBadType is reported when a value fails its -type check
	ErrorTypeBadType ErrorType = "type_mismatch"

	// ErrorTypeBinding is reported when results cannot be delivered to the
	// caller's variable scope
	ErrorTypeBinding ErrorType = "binding_error"
)

// ParseError represents a parsing error with context information
type ParseError struct {
	Type       ErrorType
	Message    string
	Element    string // element name involved, when known
	Suggestion string
	Cause      error
}

// Error implements the error interface. The message carries the full
// human-readable diagnostic; Suggestion is advisory and not appended.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WithSuggestion attaches a usage hint and returns the error for chaining
func (e *ParseError) WithSuggestion(s string) *ParseError {
	e.Suggestion = s
	return e
}

// WithElement records the element the error refers to and returns the error
func (e *ParseError) WithElement(name string) *ParseError {
	e.Element = name
	return e
}

// WithCause attaches an underlying error and returns the error for chaining
func (e *ParseError) WithCause(err error) *ParseError {
	e.Cause = err
	return e
}

func newError(t ErrorType, msg string) *ParseError {
	return &ParseError{Type: t, Message: msg}
}

func errorf(t ErrorType, format string, args ...any) *ParseError {
	return &ParseError{Type: t, Message: fmt.Sprintf(format, args...)}
}

// HelpError is returned when help was requested and Options.HelpReturn is
// set, or after the help text has been written. Text holds the rendered help
// message and Level the configured unwind level.
type HelpError struct {
	Text    string
	Level   int
	printed bool
}

// Error implements the error interface
func (e *HelpError) Error() string {
	return "help requested"
}

// Printed reports whether the help text was already written to the
// configured output
func (e *HelpError) Printed() bool {
	return e.printed
}
