package internal

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Lexer turns source text into a token tree
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the whole source and returns the top-level sequence.
// Nesting is bounded only by the call stack; pathologically deep brackets
// can exhaust it.
func (l *Lexer) Tokenize() (TokenSequence, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	tokens, err := l.scanSequence(0, Position{})
	if err != nil {
		return nil, err
	}
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, tokens.Count()))
	return tokens, nil
}

// scanSequence scans tokens until the closing byte is seen (0 means end of input).
// openPos is the position of the opening delimiter, used for unclosed errors.
func (l *Lexer) scanSequence(closer byte, openPos Position) (TokenSequence, error) {
	var tokens TokenSequence

	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.isAtEnd() {
			if closer != 0 {
				return nil, NewSyntaxError(ConstructDelimiter, ErrMsgUnclosedDelim, openPos)
			}
			return tokens, nil
		}

		ch := l.peek()
		pos := l.currentPosition()

		switch {
		case ch == CharParenClose || ch == CharBracketEnd || ch == CharBraceClose:
			if closer == 0 {
				return nil, NewSyntaxError(ConstructDelimiter, ErrMsgUnexpectedClose, pos)
			}
			if ch != closer {
				return nil, NewSyntaxError(ConstructDelimiter, ErrMsgMismatchedClose, pos)
			}
			l.advance()
			return tokens, nil

		case ch == CharParenOpen || ch == CharBracketOpen || ch == CharBraceOpen:
			tok, err := l.scanGroup()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == CharDoubleQuote:
			tok, err := l.scanString(pos, l.pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == CharSingleQuote:
			tok, err := l.scanQuote()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isDigit(ch):
			tokens = append(tokens, l.scanNumber())

		case isLetter(ch) || ch == CharUnderscore:
			tok, err := l.scanIdentOrPrefixed()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isPunctChar(ch):
			l.advance()
			spacing := SpacingAlone
			if isPunctChar(l.peek()) || l.peek() == CharSingleQuote {
				spacing = SpacingJoint
			}
			tokens = append(tokens, NewPunct(ch, spacing, pos))

		default:
			return nil, NewSyntaxError(ConstructToken, ErrMsgUnexpectedChar, pos)
		}
	}
}

// scanGroup scans a delimited group including its closing delimiter
func (l *Lexer) scanGroup() (Token, error) {
	pos := l.currentPosition()
	open := l.advance()

	var delim Delimiter
	var closer byte
	switch open {
	case CharParenOpen:
		delim, closer = DelimParen, CharParenClose
	case CharBracketOpen:
		delim, closer = DelimBracket, CharBracketEnd
	default:
		delim, closer = DelimBrace, CharBraceClose
	}

	inner, err := l.scanSequence(closer, pos)
	if err != nil {
		return Token{}, err
	}
	return NewGroup(delim, inner, pos), nil
}

// scanIdentOrPrefixed scans an identifier, or a byte string/char literal
// when the identifier is the `b` prefix directly followed by a quote
func (l *Lexer) scanIdentOrPrefixed() (Token, error) {
	startPos := l.currentPosition()
	start := l.pos

	for !l.isAtEnd() {
		ch := l.peek()
		if isLetter(ch) || isDigit(ch) || ch == CharUnderscore {
			l.advance()
		} else {
			break
		}
	}

	name := l.source[start:l.pos]
	if name == "b" && l.peek() == CharDoubleQuote {
		return l.scanString(startPos, start)
	}
	if name == "b" && l.peek() == CharSingleQuote {
		if tok, ok, err := l.scanCharLiteral(startPos, start); ok || err != nil {
			return tok, err
		}
	}
	return NewIdent(name, startPos), nil
}

// scanNumber scans a numeric literal. A dot is taken only when a digit
// follows it, so `0..3` stays a bound, two dots and a bound.
func (l *Lexer) scanNumber() Token {
	startPos := l.currentPosition()
	start := l.pos

	for !l.isAtEnd() {
		ch := l.peek()
		switch {
		case isLetter(ch) || isDigit(ch) || ch == CharUnderscore:
			l.advance()
		case ch == CharDot && isDigit(l.peekAt(1)) && !strings.Contains(l.source[start:l.pos], "."):
			l.advance()
		default:
			return NewLiteral(l.source[start:l.pos], startPos)
		}
	}
	return NewLiteral(l.source[start:l.pos], startPos)
}

// scanString scans a double-quoted string. start is the byte offset where
// the literal text begins (including any prefix).
func (l *Lexer) scanString(startPos Position, start int) (Token, error) {
	l.advance() // consume opening quote

	for !l.isAtEnd() {
		ch := l.advance()
		if ch == CharBackslash {
			l.advance()
			continue
		}
		if ch == CharDoubleQuote {
			return NewLiteral(l.source[start:l.pos], startPos), nil
		}
	}

	return Token{}, NewSyntaxError(ConstructToken, ErrMsgUnterminatedStr, startPos)
}

// scanQuote scans a char literal, or a lone quote punct for lifetimes
func (l *Lexer) scanQuote() (Token, error) {
	pos := l.currentPosition()
	tok, ok, err := l.scanCharLiteral(pos, l.pos)
	if err != nil || ok {
		return tok, err
	}
	l.advance()
	return NewPunct(CharSingleQuote, SpacingJoint, pos), nil
}

// scanCharLiteral tries to scan 'x' or '\x' starting at the current quote.
// It returns ok=false without consuming anything when the quote does not
// open a char literal.
func (l *Lexer) scanCharLiteral(startPos Position, start int) (Token, bool, error) {
	if l.peekAt(1) == CharBackslash {
		l.advance() // quote
		l.advance() // backslash
		l.advance() // escaped character
		for !l.isAtEnd() && l.peek() != CharSingleQuote && l.peek() != CharNewline {
			l.advance()
		}
		if l.peek() != CharSingleQuote {
			return Token{}, false, NewSyntaxError(ConstructToken, ErrMsgUnterminatedChar, startPos)
		}
		l.advance()
		return NewLiteral(l.source[start:l.pos], startPos), true, nil
	}

	if l.pos+1 >= len(l.source) {
		return Token{}, false, nil
	}
	_, width := utf8.DecodeRuneInString(l.source[l.pos+1:])
	if l.peekAt(1+width) != CharSingleQuote || l.peekAt(1) == CharSingleQuote {
		return Token{}, false, nil
	}
	l.advanceN(2 + width)
	return NewLiteral(l.source[start:l.pos], startPos), true, nil
}

// skipTrivia skips whitespace and comments
func (l *Lexer) skipTrivia() error {
	for !l.isAtEnd() {
		ch := l.peek()
		switch {
		case ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet:
			l.advance()
		case ch == CharSlash && l.peekAt(1) == CharSlash:
			for !l.isAtEnd() && l.peek() != CharNewline {
				l.advance()
			}
		case ch == CharSlash && l.peekAt(1) == CharStar:
			pos := l.currentPosition()
			l.advanceN(2)
			for !l.matchStr("*/") {
				if l.isAtEnd() {
					return NewSyntaxError(ConstructToken, ErrMsgUnterminatedCmt, pos)
				}
				l.advance()
			}
			l.advanceN(2)
		default:
			return nil
		}
	}
	return nil
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

// peekAt returns the character n bytes ahead, or 0 past the end
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize is a convenience wrapper around NewLexer(...).Tokenize()
func Tokenize(source string, logger *zap.Logger) (TokenSequence, error) {
	return NewLexer(source, logger).Tokenize()
}
