package internal

import (
	"errors"
	"fmt"
)

// Syntax holds the punct characters that drive repetition
type Syntax struct {
	Marker byte // Opens a repetition marker, default '#'
	Repeat byte // Closes a repetition marker, default '*'
	Splice byte // Joins an identifier with the placeholder, default '~'
}

// DefaultSyntax returns the default syntax: #( ... )* and X~N
func DefaultSyntax() Syntax {
	return Syntax{
		Marker: DefaultMarker,
		Repeat: DefaultRepeat,
		Splice: DefaultSplice,
	}
}

// Syntax validation messages
const (
	ErrMsgSyntaxNotPunct   = "syntax character must be punctuation"
	ErrMsgSyntaxReserved   = "syntax character is reserved for the range operator"
	ErrMsgSyntaxDuplicated = "syntax characters must be distinct"
	ErrFmtSyntaxChar       = "%s: %s %q"
)

// Syntax field names for validation messages
const (
	SyntaxFieldMarker = "marker"
	SyntaxFieldRepeat = "repeat"
	SyntaxFieldSplice = "splice"
)

// Validate checks that the characters are distinct punctuation and do not
// collide with the range operator.
func (s Syntax) Validate() error {
	fields := []struct {
		name string
		ch   byte
	}{
		{SyntaxFieldMarker, s.Marker},
		{SyntaxFieldRepeat, s.Repeat},
		{SyntaxFieldSplice, s.Splice},
	}

	for _, f := range fields {
		if !isPunctChar(f.ch) {
			return fmt.Errorf(ErrFmtSyntaxChar, ErrMsgSyntaxNotPunct, f.name, f.ch)
		}
		if f.ch == CharDot {
			return fmt.Errorf(ErrFmtSyntaxChar, ErrMsgSyntaxReserved, f.name, f.ch)
		}
	}

	if s.Marker == s.Repeat || s.Marker == s.Splice || s.Repeat == s.Splice {
		return errors.New(ErrMsgSyntaxDuplicated)
	}
	return nil
}
