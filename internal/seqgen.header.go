package internal

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"
)

// ExpansionSpec is the parsed form of `N in start..end { body }`.
// Bounds stay literal tokens so range errors point at them.
type ExpansionSpec struct {
	Placeholder Token
	Start       Token
	End         Token
	Inclusive   bool
	Body        TokenSequence
}

// parser token type tags
const (
	pcTypeRaw = "raw"
)

var (
	identP   = kindParser(KindIdent)
	literalP = kindParser(KindLiteral)
	inP      = keywordParser(KeywordIn)
	bodyP    = groupParser(DelimBrace)
	eosP     = pc.EOS[Token]()

	dotJointP = punctParser(CharDot, SpacingJoint, true)
	dotAloneP = punctParser(CharDot, SpacingAlone, true)
	equalsP   = punctParser(CharEquals, SpacingAlone, false)

	// `..` ends with an alone dot, `..=` with two joint dots and `=`, so the
	// alternatives never overlap
	rangeOpP = pc.Or(
		pc.Seq(dotJointP, dotAloneP),
		pc.Seq(dotJointP, dotJointP, equalsP),
	)
)

// headerStep is one element of the fixed header grammar
type headerStep struct {
	construct string
	message   string
	parser    pc.Parser[Token]
}

// ParseHeader parses the invocation payload. The first token that breaks
// the grammar is reported as a syntax error.
func ParseHeader(tokens TokenSequence) (*ExpansionSpec, error) {
	pctx := pc.NewParseContext[Token]()
	rest := toParserTokens(tokens)

	steps := []headerStep{
		{ConstructPlaceholder, ErrMsgExpectedPlaceholder, identP},
		{ConstructKeywordIn, ErrMsgExpectedIn, inP},
		{ConstructStartBound, ErrMsgExpectedStart, literalP},
		{ConstructRangeOp, ErrMsgExpectedRangeOp, rangeOpP},
		{ConstructEndBound, ErrMsgExpectedEnd, literalP},
		{ConstructBody, ErrMsgExpectedBody, bodyP},
		{ConstructTrailing, ErrMsgTrailingTokens, eosP},
	}

	matched := make([][]pc.Token[Token], len(steps))
	for i, step := range steps {
		consumed, match, err := step.parser(pctx, rest)
		if err != nil {
			return nil, stepError(step, rest, tokens)
		}
		matched[i] = match
		rest = rest[consumed:]
	}

	return &ExpansionSpec{
		Placeholder: matched[0][0].Val,
		Start:       matched[2][0].Val,
		Inclusive:   len(matched[3]) == len(StrRangeInclusive),
		End:         matched[4][0].Val,
		Body:        matched[5][0].Val.Inner,
	}, nil
}

// stepError builds the syntax error for a failed step
func stepError(step headerStep, rest []pc.Token[Token], all TokenSequence) error {
	if len(rest) == 0 {
		var pos Position
		if len(all) > 0 {
			pos = all[len(all)-1].Position
		}
		return NewSyntaxError(step.construct, ErrMsgUnexpectedEnd, pos)
	}
	found := rest[0].Val
	return NewSyntaxError(step.construct, fmt.Sprintf(ErrFmtFound, step.message, found.Describe()), found.Position)
}

// toParserTokens adapts a flat sequence to the combinator token type
func toParserTokens(tokens TokenSequence) []pc.Token[Token] {
	results := make([]pc.Token[Token], len(tokens))
	for i, tok := range tokens {
		results[i] = pc.Token[Token]{
			Type: pcTypeRaw,
			Pos: &pc.Pos{
				Line:  tok.Position.Line,
				Col:   tok.Position.Column,
				Index: tok.Position.Offset,
			},
			Val: tok,
			Raw: tok.Text,
		}
	}
	return results
}

func kindParser(kind Kind) pc.Parser[Token] {
	return func(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
		if len(tokens) > 0 && tokens[0].Val.Kind == kind {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

func keywordParser(word string) pc.Parser[Token] {
	return func(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
		if len(tokens) > 0 && tokens[0].Val.IsIdent(word) {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

// punctParser matches a punct character; when checkSpacing is set the
// spacing must match as well
func punctParser(ch byte, spacing Spacing, checkSpacing bool) pc.Parser[Token] {
	return func(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
		if len(tokens) > 0 && tokens[0].Val.IsPunct(ch) && (!checkSpacing || tokens[0].Val.Spacing == spacing) {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

func groupParser(delim Delimiter) pc.Parser[Token] {
	return func(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
		if len(tokens) > 0 && tokens[0].Val.IsGroup(delim) {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}
