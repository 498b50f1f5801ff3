package internal

import "fmt"

// ErrorKind categorizes expansion diagnostics
type ErrorKind int

// Error kind constants
const (
	ErrorKindSyntax ErrorKind = iota
	ErrorKindRange
	ErrorKindStructure
)

// Error kind names
const (
	ErrorKindNameSyntax    = "syntax"
	ErrorKindNameRange     = "range"
	ErrorKindNameStructure = "structure"
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindRange:
		return ErrorKindNameRange
	case ErrorKindStructure:
		return ErrorKindNameStructure
	default:
		return ErrorKindNameSyntax
	}
}

// Error is a diagnostic tied to a position in the invocation text
type Error struct {
	Kind      ErrorKind
	Construct string // The offending construct, e.g. "range operator"
	Message   string
	Position  Position
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Position.Line > 0 {
		return fmt.Sprintf(ErrFmtWithPosition, e.Kind, e.Message, e.Position)
	}
	return fmt.Sprintf(ErrFmtNoPosition, e.Kind, e.Message)
}

// NewSyntaxError creates a syntax error at pos
func NewSyntaxError(construct, msg string, pos Position) *Error {
	return &Error{Kind: ErrorKindSyntax, Construct: construct, Message: msg, Position: pos}
}

// NewRangeError creates a range error at pos
func NewRangeError(construct, msg string, pos Position) *Error {
	return &Error{Kind: ErrorKindRange, Construct: construct, Message: msg, Position: pos}
}

// NewStructureError creates a structure error at pos
func NewStructureError(construct, msg string, pos Position) *Error {
	return &Error{Kind: ErrorKindStructure, Construct: construct, Message: msg, Position: pos}
}
