package internal

import (
	"fmt"
	"strings"
)

// Position represents a location in the source text
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is one node of a token tree: an identifier, a literal, a single
// punctuation character, or a delimited group holding a nested sequence.
// Tokens are values; rewrites build new tokens instead of mutating.
type Token struct {
	Kind     Kind
	Text     string        // Identifier name, literal source text, or the punct character
	Spacing  Spacing       // Punct only
	Delim    Delimiter     // Group only
	Inner    TokenSequence // Group only
	Position Position
}

// TokenSequence is an ordered list of tokens
type TokenSequence []Token

// NewIdent creates an identifier token
func NewIdent(name string, pos Position) Token {
	return Token{Kind: KindIdent, Text: name, Position: pos}
}

// NewLiteral creates a literal token from its source text
func NewLiteral(text string, pos Position) Token {
	return Token{Kind: KindLiteral, Text: text, Position: pos}
}

// NewPunct creates a punct token
func NewPunct(ch byte, spacing Spacing, pos Position) Token {
	return Token{Kind: KindPunct, Text: string(ch), Spacing: spacing, Position: pos}
}

// NewGroup creates a group token
func NewGroup(delim Delimiter, inner TokenSequence, pos Position) Token {
	return Token{Kind: KindGroup, Delim: delim, Inner: inner, Position: pos}
}

// IsIdent returns true if this is an identifier with the given name
func (t Token) IsIdent(name string) bool {
	return t.Kind == KindIdent && t.Text == name
}

// IsPunct returns true if this is the given punct character
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == KindPunct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsGroup returns true if this is a group with the given delimiter
func (t Token) IsGroup(delim Delimiter) bool {
	return t.Kind == KindGroup && t.Delim == delim
}

// WithInner returns a copy of the group with a new inner sequence.
// Delimiter and position are kept.
func (t Token) WithInner(inner TokenSequence) Token {
	t.Inner = inner
	return t
}

// Describe returns a short human-readable form used in diagnostics
func (t Token) Describe() string {
	switch t.Kind {
	case KindGroup:
		open, _ := t.Delim.Pair()
		if open == "" {
			return "group"
		}
		return "`" + open + "`"
	default:
		return "`" + t.Text + "`"
	}
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Kind == KindGroup {
		return fmt.Sprintf("Token{%s %s [%d] @ %s}", t.Kind, t.Describe(), len(t.Inner), t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Kind, t.Text, t.Position)
}

// Pair returns the opening and closing strings of the delimiter
func (d Delimiter) Pair() (string, string) {
	switch d {
	case DelimParen:
		return FmtParenOpen, FmtParenClose
	case DelimBracket:
		return FmtBracketOpen, FmtBracketClose
	case DelimBrace:
		return FmtBraceOpen, FmtBraceClose
	default:
		return "", ""
	}
}

// Count returns the number of tokens in the tree, groups included
func (s TokenSequence) Count() int {
	n := 0
	for _, tok := range s {
		n++
		if tok.Kind == KindGroup {
			n += tok.Inner.Count()
		}
	}
	return n
}

// String renders the sequence for debugging
func (s TokenSequence) String() string {
	parts := make([]string, len(s))
	for i, tok := range s {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// isPunctChar reports whether ch is lexed as a punct token
func isPunctChar(ch byte) bool {
	return ch != 0 && strings.IndexByte(PunctChars, ch) >= 0
}
