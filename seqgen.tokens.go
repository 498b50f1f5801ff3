package seqgen

import (
	"github.com/itsatony/go-seqgen/internal"
	"go.uber.org/zap"
)

// Token tree types shared with the engine
type (
	Token         = internal.Token
	TokenSequence = internal.TokenSequence
	Position      = internal.Position
	Kind          = internal.Kind
	Delimiter     = internal.Delimiter
	Spacing       = internal.Spacing
	Syntax        = internal.Syntax
)

// Token kinds
const (
	KindIdent   = internal.KindIdent
	KindLiteral = internal.KindLiteral
	KindPunct   = internal.KindPunct
	KindGroup   = internal.KindGroup
)

// Group delimiters
const (
	DelimNone    = internal.DelimNone
	DelimParen   = internal.DelimParen
	DelimBracket = internal.DelimBracket
	DelimBrace   = internal.DelimBrace
)

// Punct spacing
const (
	SpacingAlone = internal.SpacingAlone
	SpacingJoint = internal.SpacingJoint
)

// DefaultSyntax returns the default repetition syntax: #( ... )* and X~N
func DefaultSyntax() Syntax {
	return internal.DefaultSyntax()
}

// NewIdent creates an identifier token
func NewIdent(name string, pos Position) Token {
	return internal.NewIdent(name, pos)
}

// NewLiteral creates a literal token
func NewLiteral(text string, pos Position) Token {
	return internal.NewLiteral(text, pos)
}

// NewPunct creates a punct token
func NewPunct(ch byte, spacing Spacing, pos Position) Token {
	return internal.NewPunct(ch, spacing, pos)
}

// NewGroup creates a group token
func NewGroup(delim Delimiter, inner TokenSequence, pos Position) Token {
	return internal.NewGroup(delim, inner, pos)
}

// Tokenize lexes source into a token tree. Errors carry position metadata.
func Tokenize(source string) (TokenSequence, error) {
	return tokenize(source, zap.NewNop())
}

func tokenize(source string, logger *zap.Logger) (TokenSequence, error) {
	tokens, err := internal.NewLexer(source, logger).Tokenize()
	if err != nil {
		return nil, wrapError(ErrMsgTokenizeFailed, err)
	}
	return tokens, nil
}

// Print renders a token tree as source text with normalized spacing
func Print(tokens TokenSequence) string {
	return internal.Print(tokens)
}
