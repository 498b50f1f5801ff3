package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// lex tokenizes src and fails the test on error
func lex(t *testing.T, src string) TokenSequence {
	t.Helper()
	tokens, err := NewLexer(src, zap.NewNop()).Tokenize()
	require.NoError(t, err)
	return tokens
}

// stripPositions returns a copy of tokens with every position zeroed
func stripPositions(tokens TokenSequence) TokenSequence {
	if tokens == nil {
		return nil
	}
	out := make(TokenSequence, len(tokens))
	for i, tok := range tokens {
		tok.Position = Position{}
		if tok.Kind == KindGroup {
			tok.Inner = stripPositions(tok.Inner)
		}
		out[i] = tok
	}
	return out
}

func pos(offset, line, column int) Position {
	return Position{Offset: offset, Line: line, Column: column}
}

func TestLexer_Tokenize_Invocation(t *testing.T) {
	tokens := lex(t, "N in 0..3 { f~N }")

	expected := TokenSequence{
		NewIdent("N", pos(0, 1, 1)),
		NewIdent("in", pos(2, 1, 3)),
		NewLiteral("0", pos(5, 1, 6)),
		NewPunct('.', SpacingJoint, pos(6, 1, 7)),
		NewPunct('.', SpacingAlone, pos(7, 1, 8)),
		NewLiteral("3", pos(8, 1, 9)),
		NewGroup(DelimBrace, TokenSequence{
			NewIdent("f", pos(12, 1, 13)),
			NewPunct('~', SpacingAlone, pos(13, 1, 14)),
			NewIdent("N", pos(14, 1, 15)),
		}, pos(10, 1, 11)),
	}
	assert.Equal(t, expected, tokens)
}

func TestLexer_Tokenize_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TokenSequence
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "identifiers with underscores and digits",
			input: "_a b2 c_d",
			expected: TokenSequence{
				NewIdent("_a", Position{}),
				NewIdent("b2", Position{}),
				NewIdent("c_d", Position{}),
			},
		},
		{
			name:  "numeric literals",
			input: "1.5 0x1F 10usize 1_000",
			expected: TokenSequence{
				NewLiteral("1.5", Position{}),
				NewLiteral("0x1F", Position{}),
				NewLiteral("10usize", Position{}),
				NewLiteral("1_000", Position{}),
			},
		},
		{
			name:  "inclusive range keeps bounds apart",
			input: "0..=2",
			expected: TokenSequence{
				NewLiteral("0", Position{}),
				NewPunct('.', SpacingJoint, Position{}),
				NewPunct('.', SpacingJoint, Position{}),
				NewPunct('=', SpacingAlone, Position{}),
				NewLiteral("2", Position{}),
			},
		},
		{
			name:  "string literals with escapes",
			input: `"a\"b" b"xy"`,
			expected: TokenSequence{
				NewLiteral(`"a\"b"`, Position{}),
				NewLiteral(`b"xy"`, Position{}),
			},
		},
		{
			name:  "char literals",
			input: `'a' '\n' '\''`,
			expected: TokenSequence{
				NewLiteral(`'a'`, Position{}),
				NewLiteral(`'\n'`, Position{}),
				NewLiteral(`'\''`, Position{}),
			},
		},
		{
			name:  "lifetime quote is a joint punct",
			input: "&'a T",
			expected: TokenSequence{
				NewPunct('&', SpacingJoint, Position{}),
				NewPunct('\'', SpacingJoint, Position{}),
				NewIdent("a", Position{}),
				NewIdent("T", Position{}),
			},
		},
		{
			name:  "multi-character operators are joint puncts",
			input: "-> ::",
			expected: TokenSequence{
				NewPunct('-', SpacingJoint, Position{}),
				NewPunct('>', SpacingAlone, Position{}),
				NewPunct(':', SpacingJoint, Position{}),
				NewPunct(':', SpacingAlone, Position{}),
			},
		},
		{
			name:  "comments are skipped",
			input: "a // line\n/* block */ b",
			expected: TokenSequence{
				NewIdent("a", Position{}),
				NewIdent("b", Position{}),
			},
		},
		{
			name:  "nested groups",
			input: "(a [b] {c})",
			expected: TokenSequence{
				NewGroup(DelimParen, TokenSequence{
					NewIdent("a", Position{}),
					NewGroup(DelimBracket, TokenSequence{NewIdent("b", Position{})}, Position{}),
					NewGroup(DelimBrace, TokenSequence{NewIdent("c", Position{})}, Position{}),
				}, Position{}),
			},
		},
		{
			name:  "empty group",
			input: "()",
			expected: TokenSequence{
				NewGroup(DelimParen, nil, Position{}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lex(t, tt.input)
			assert.Equal(t, tt.expected, stripPositions(tokens))
		})
	}
}

func TestLexer_Tokenize_MultilinePositions(t *testing.T) {
	tokens := lex(t, "a\n  b\r\n\tc")

	require.Len(t, tokens, 3)
	assert.Equal(t, pos(0, 1, 1), tokens[0].Position)
	assert.Equal(t, pos(4, 2, 3), tokens[1].Position)
	assert.Equal(t, pos(8, 3, 2), tokens[2].Position)
}

func TestLexer_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		message  string
		position Position
	}{
		{"unterminated string", `"abc`, ErrMsgUnterminatedStr, pos(0, 1, 1)},
		{"unterminated escaped char", `'\n`, ErrMsgUnterminatedChar, pos(0, 1, 1)},
		{"unterminated block comment", "a /* b", ErrMsgUnterminatedCmt, pos(2, 1, 3)},
		{"mismatched close", "(a]", ErrMsgMismatchedClose, pos(2, 1, 3)},
		{"unexpected close", "a)", ErrMsgUnexpectedClose, pos(1, 1, 2)},
		{"unclosed delimiter reported at opening", "x {a", ErrMsgUnclosedDelim, pos(2, 1, 3)},
		{"unexpected character", "a ` b", ErrMsgUnexpectedChar, pos(2, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input, nil).Tokenize()
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrorKindSyntax, perr.Kind)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.position, perr.Position)
		})
	}
}

func TestTokenize_Convenience(t *testing.T) {
	tokens, err := Tokenize("a b", nil)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}
