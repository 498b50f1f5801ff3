package internal

// Kind identifies the shape of a token
type Kind int

// Token kind constants
const (
	KindIdent Kind = iota
	KindLiteral
	KindPunct
	KindGroup
)

// Token kind string names for debugging
const (
	KindNameIdent   = "IDENT"
	KindNameLiteral = "LITERAL"
	KindNamePunct   = "PUNCT"
	KindNameGroup   = "GROUP"
)

// String returns the string representation of the token kind
func (k Kind) String() string {
	switch k {
	case KindIdent:
		return KindNameIdent
	case KindLiteral:
		return KindNameLiteral
	case KindPunct:
		return KindNamePunct
	case KindGroup:
		return KindNameGroup
	default:
		return KindNameIdent
	}
}

// Delimiter identifies the bracket pair around a group
type Delimiter int

// Delimiter constants
const (
	DelimNone Delimiter = iota
	DelimParen
	DelimBracket
	DelimBrace
)

// Spacing tells whether a punct is immediately followed by another punct
type Spacing int

// Spacing constants
const (
	SpacingAlone Spacing = iota
	SpacingJoint
)

// Character constants
const (
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharBackslash   = '\\'
	CharSlash       = '/'
	CharStar        = '*'
	CharUnderscore  = '_'
	CharDot         = '.'
	CharEquals      = '='
	CharBang        = '!'
	CharColon       = ':'
	CharComma       = ','
	CharSemicolon   = ';'
	CharParenOpen   = '('
	CharParenClose  = ')'
	CharBracketOpen = '['
	CharBracketEnd  = ']'
	CharBraceOpen   = '{'
	CharBraceClose  = '}'
)

// PunctChars lists every byte lexed as a punct token
const PunctChars = "!#$%&*+,-./:;<=>?@^|~"

// Default repetition syntax
const (
	DefaultMarker = '#'
	DefaultRepeat = '*'
	DefaultSplice = '~'
)

// Header keywords and operators
const (
	KeywordIn         = "in"
	DefaultMacroName  = "seq"
	StrRangeExclusive = ".."
	StrRangeInclusive = "..="
)

// Default limits
const (
	DefaultMaxRepetitions = 10000
	DefaultMaxDepth       = 16
)

// Integer literal suffixes accepted on range bounds
var IntegerSuffixes = []string{
	"u128", "usize", "u64", "u32", "u16", "u8",
	"i128", "isize", "i64", "i32", "i16", "i8",
}

// Printer format constants
const (
	FmtParenOpen    = "("
	FmtParenClose   = ")"
	FmtBracketOpen  = "["
	FmtBracketClose = "]"
	FmtBraceOpen    = "{"
	FmtBraceClose   = "}"
	FmtEmptyBraces  = "{}"
	FmtSpace        = " "
)

// Log message constants
const (
	LogMsgLexerCreated      = "lexer created"
	LogMsgTokenizerStart    = "starting tokenization"
	LogMsgTokenizerEnd      = "tokenization complete"
	LogMsgExpanderCreated   = "expander created"
	LogMsgExpandStart       = "starting expansion"
	LogMsgHeaderParsed      = "invocation header parsed"
	LogMsgRangeEvaluated    = "range evaluated"
	LogMsgModeSelected      = "expansion mode selected"
	LogMsgExpandEnd         = "expansion complete"
	LogMsgExpandFailed      = "expansion failed"
	LogMsgRewriterCreated   = "rewriter created"
	LogMsgInvocationFound   = "macro invocation found"
	LogMsgRewriteDepthCheck = "checking rewrite depth"
)

// Log field names
const (
	LogFieldSource      = "source_length"
	LogFieldTokens      = "token_count"
	LogFieldPlaceholder = "placeholder"
	LogFieldStart       = "start"
	LogFieldEnd         = "end"
	LogFieldInclusive   = "inclusive"
	LogFieldCount       = "count"
	LogFieldMode        = "mode"
	LogFieldDepth       = "depth"
	LogFieldMacro       = "macro"
	LogFieldLine        = "line"
	LogFieldColumn      = "column"
	LogFieldError       = "error"
)

// Construct names used in diagnostics
const (
	ConstructToken       = "token"
	ConstructDelimiter   = "delimiter"
	ConstructPlaceholder = "placeholder"
	ConstructKeywordIn   = "in keyword"
	ConstructStartBound  = "start bound"
	ConstructEndBound    = "end bound"
	ConstructRangeOp     = "range operator"
	ConstructBody        = "braced body"
	ConstructTrailing    = "trailing tokens"
	ConstructMarker      = "repetition marker"
	ConstructSplice      = "splice"
	ConstructInvocation  = "macro invocation"
)

// Error message constants for lexer
const (
	ErrMsgUnterminatedStr  = "unterminated string literal"
	ErrMsgUnterminatedChar = "unterminated character literal"
	ErrMsgUnterminatedCmt  = "unterminated block comment"
	ErrMsgUnexpectedChar   = "unexpected character"
	ErrMsgUnexpectedClose  = "unexpected closing delimiter"
	ErrMsgMismatchedClose  = "mismatched closing delimiter"
	ErrMsgUnclosedDelim    = "unclosed delimiter"
)

// Error message constants for header parsing
const (
	ErrMsgExpectedPlaceholder = "expected placeholder identifier"
	ErrMsgExpectedIn          = "expected `in` keyword"
	ErrMsgExpectedStart       = "expected integer start bound"
	ErrMsgExpectedRangeOp     = "expected range operator `..` or `..=`"
	ErrMsgExpectedEnd         = "expected integer end bound"
	ErrMsgExpectedBody        = "expected braced body `{ ... }`"
	ErrMsgTrailingTokens      = "unexpected tokens after body"
	ErrMsgUnexpectedEnd       = "unexpected end of invocation"
)

// Error message constants for range evaluation
const (
	ErrMsgInvalidBound    = "bound is not a non-negative integer"
	ErrMsgStartAfterEnd   = "range start is greater than range end"
	ErrMsgTooManyRepeats  = "range exceeds the repetition limit"
	ErrFmtInvalidBound    = "%s: %s"
	ErrFmtStartAfterEnd   = "%s (%d > %d)"
	ErrFmtTooManyRepeats  = "%s (%d > %d)"
)

// Error message constants for marker detection and splicing
const (
	ErrMsgMultipleMarkers   = "more than one repetition marker in body"
	ErrMsgMarkerMissingStar = "repetition marker group is not followed by the repeat suffix"
	ErrMsgSpliceNoIdent     = "splice operator must be followed by an identifier"
	ErrFmtMultipleMarkers   = "%s (first marker at %s)"
	ErrFmtMarkerMissingStar = "%s `%c`"
	ErrFmtFound             = "%s, found %s"
)

// Error message constants for invocation rewriting
const (
	ErrMsgRewriteDepthExceeded = "maximum nested macro invocation depth exceeded"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition = "%s error: %s at %s"
	ErrFmtNoPosition   = "%s error: %s"
)

// Mode name constants
const (
	ModeNameDirect   = "direct"
	ModeNameTargeted = "targeted"
)
