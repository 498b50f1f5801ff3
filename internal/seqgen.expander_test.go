package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExpander() *Expander {
	return NewExpander(DefaultExpanderConfig(), zap.NewNop())
}

func TestExpander_Expand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "function per index",
			input:    "N in 0..3 { fn f~N() -> usize { N } }",
			expected: "fn f0() -> usize { 0 } fn f1() -> usize { 1 } fn f2() -> usize { 2 }",
		},
		{
			name:     "inclusive range without placeholder",
			input:    "N in 0..=2 { X, }",
			expected: "X, X, X,",
		},
		{
			name:     "targeted top level",
			input:    "N in 1..4 { let v = [#(N,)*]; }",
			expected: "let v = [1, 2, 3,];",
		},
		{
			name:     "targeted inside nested groups",
			input:    "N in 1..4 { enum E { #(V~N,)* } }",
			expected: "enum E { V1, V2, V3, }",
		},
		{
			name:     "prefix and suffix appear once",
			input:    "N in 0..2 { a #(b~N)* c }",
			expected: "a b0 b1 c",
		},
		{
			name:     "bracket delimiters are preserved",
			input:    "i in 2..=3 { [i] (i) }",
			expected: "[2] (2) [3] (3)",
		},
		{
			name:     "other tokens reproduced unchanged",
			input:    `N in 0..2 { "s" 'c' 1.5 x::y }`,
			expected: `"s" 'c' 1.5 x::y "s" 'c' 1.5 x::y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestExpander().Expand(lex(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Print(out))
		})
	}
}

func TestExpander_Expand_SpliceYieldsOneIdentifier(t *testing.T) {
	out, err := newTestExpander().Expand(lex(t, "N in 3..4 { f~N }"))
	require.NoError(t, err)
	assert.Equal(t, TokenSequence{NewIdent("f3", Position{})}, stripPositions(out))
}

func TestExpander_Expand_BareYieldsNumeral(t *testing.T) {
	out, err := newTestExpander().Expand(lex(t, "N in 3..4 { N }"))
	require.NoError(t, err)
	assert.Equal(t, TokenSequence{NewLiteral("3", Position{})}, stripPositions(out))
}

func TestExpander_Expand_DirectCount(t *testing.T) {
	tests := []struct {
		input string
		count int
	}{
		{"N in 0..0 { x }", 0},
		{"N in 0..=0 { x }", 1},
		{"N in 2..7 { x }", 5},
		{"N in 2..=7 { x }", 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := newTestExpander().Expand(lex(t, tt.input))
			require.NoError(t, err)
			assert.Len(t, out, tt.count)
		})
	}
}

func TestExpander_Expand_EmptyOutput(t *testing.T) {
	tests := []string{
		"N in 0..0 { #( N )* }",
		"N in 4..4 { x }",
		"N in 0..3 {}",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			out, err := newTestExpander().Expand(lex(t, input))
			require.NoError(t, err)
			assert.NotNil(t, out)
			assert.Empty(t, out)
		})
	}
}

func TestExpander_Expand_ZeroTargetedKeepsOuter(t *testing.T) {
	out, err := newTestExpander().Expand(lex(t, "N in 0..0 { a { b #(N)* c } d }"))
	require.NoError(t, err)
	assert.Equal(t, "a { b c } d", Print(out))
}

func TestExpander_Expand_PreservesPositions(t *testing.T) {
	//                          0         1         2
	//                          0123456789012345678901234
	out, err := newTestExpander().Expand(lex(t, "N in 0..2 { a #(f~N)* z }"))
	require.NoError(t, err)

	require.Len(t, out, 4)
	assert.Equal(t, pos(12, 1, 13), out[0].Position)
	assert.Equal(t, pos(16, 1, 17), out[1].Position)
	assert.Equal(t, pos(16, 1, 17), out[2].Position)
	assert.Equal(t, pos(22, 1, 23), out[3].Position)
}

func TestExpander_Expand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		position Position
	}{
		{"start after end", "N in 5..2 { }", ErrorKindRange, pos(5, 1, 6)},
		{"non-integer bound", `N in 0.."3" { }`, ErrorKindRange, pos(8, 1, 9)},
		{"missing in", "N 0..2 { }", ErrorKindSyntax, pos(2, 1, 3)},
		{"two markers", "N in 0..2 { #(a)* #(b)* }", ErrorKindStructure, pos(18, 1, 19)},
		{"marker without repeat", "N in 0..2 { #(a) }", ErrorKindStructure, pos(12, 1, 13)},
		{"bad splice", "N in 0..2 { f~ }", ErrorKindSyntax, pos(13, 1, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestExpander().Expand(lex(t, tt.input))
			require.Error(t, err)
			assert.Nil(t, out)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.position, perr.Position)
		})
	}
}

func TestExpander_MaxRepetitions(t *testing.T) {
	config := DefaultExpanderConfig()
	config.MaxRepetitions = 3
	expander := NewExpander(config, nil)

	_, err := expander.Expand(lex(t, "N in 0..=3 { x }"))
	require.Error(t, err)

	out, err := expander.Expand(lex(t, "N in 0..3 { x }"))
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestExpander_CustomSyntax(t *testing.T) {
	config := DefaultExpanderConfig()
	config.Syntax = Syntax{Marker: '@', Repeat: '+', Splice: '$'}
	expander := NewExpander(config, nil)

	out, err := expander.Expand(lex(t, "N in 0..2 { x @(f$N)+ y }"))
	require.NoError(t, err)
	assert.Equal(t, "x f0 f1 y", Print(out))
}

func TestExpander_ExpandSpec(t *testing.T) {
	spec, err := ParseHeader(lex(t, "N in 0..2 { N }"))
	require.NoError(t, err)

	first, err := newTestExpander().ExpandSpec(spec)
	require.NoError(t, err)
	second, err := newTestExpander().ExpandSpec(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "0 1", Print(first))
}

func TestExpander_Validate(t *testing.T) {
	expander := newTestExpander()

	assert.NoError(t, expander.Validate(lex(t, "N in 0..3 { #(f~N)* }")))
	assert.NoError(t, expander.Validate(lex(t, "N in 0..0 { x }")))

	err := expander.Validate(lex(t, "N in 0..0 { f~1 }"))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ConstructSplice, perr.Construct)
}
