package seqgen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-seqgen/internal"
)

// ErrorKind categorizes expansion diagnostics
type ErrorKind = internal.ErrorKind

// Error kinds
const (
	ErrorKindSyntax    = internal.ErrorKindSyntax
	ErrorKindRange     = internal.ErrorKindRange
	ErrorKindStructure = internal.ErrorKindStructure
)

// Diagnostic is the structured form of an expansion failure: what went
// wrong, in which construct, and where in the invocation text.
type Diagnostic struct {
	Kind      ErrorKind
	Construct string
	Message   string
	Position  Position
}

// String returns "<kind> error: <message> at line L, column C"
func (d Diagnostic) String() string {
	return fmt.Sprintf(FmtDiagnostic, d.Kind, d.Message, d.Position)
}

// AsDiagnostic extracts the diagnostic from an error returned by the
// engine. It returns false for errors that did not come from expansion,
// such as config errors.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var perr *internal.Error
	if !errors.As(err, &perr) {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Kind:      perr.Kind,
		Construct: perr.Construct,
		Message:   perr.Message,
		Position:  perr.Position,
	}, true
}

// wrapError wraps an engine error with a code matching its kind and the
// position as metadata
func wrapError(msg string, cause error) error {
	var perr *internal.Error
	if !errors.As(cause, &perr) {
		return cuserr.WrapStdError(cause, ErrCodeSyntax, msg)
	}

	return cuserr.WrapStdError(cause, errorCode(perr.Kind), msg).
		WithMetadata(MetaKeyKind, perr.Kind.String()).
		WithMetadata(MetaKeyConstruct, perr.Construct).
		WithMetadata(MetaKeyLine, strconv.Itoa(perr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(perr.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(perr.Position.Offset))
}

func errorCode(kind ErrorKind) string {
	switch kind {
	case ErrorKindRange:
		return ErrCodeRange
	case ErrorKindStructure:
		return ErrCodeStructure
	default:
		return ErrCodeSyntax
	}
}

// NewConfigError creates a configuration error for field
func NewConfigError(msg, field, value string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}
