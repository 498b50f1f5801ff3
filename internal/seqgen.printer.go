package internal

import "strings"

// Print renders a token tree back to source text. Layout is normalized:
// tokens are separated by single spaces except where the spacing rules
// below glue them together.
func Print(tokens TokenSequence) string {
	var sb strings.Builder
	printSequence(&sb, tokens)
	return sb.String()
}

func printSequence(sb *strings.Builder, tokens TokenSequence) {
	for i, tok := range tokens {
		if i > 0 && needsSpace(tokens, i) {
			sb.WriteString(FmtSpace)
		}
		printToken(sb, tok)
	}
}

func printToken(sb *strings.Builder, tok Token) {
	if tok.Kind != KindGroup {
		sb.WriteString(tok.Text)
		return
	}

	openStr, closeStr := tok.Delim.Pair()
	switch {
	case tok.Delim == DelimBrace && len(tok.Inner) == 0:
		sb.WriteString(FmtEmptyBraces)
	case tok.Delim == DelimBrace:
		sb.WriteString(openStr + FmtSpace)
		printSequence(sb, tok.Inner)
		sb.WriteString(FmtSpace + closeStr)
	default:
		sb.WriteString(openStr)
		printSequence(sb, tok.Inner)
		sb.WriteString(closeStr)
	}
}

// needsSpace decides whether a space goes between tokens[i-1] and tokens[i]
func needsSpace(tokens TokenSequence, i int) bool {
	prev, cur := tokens[i-1], tokens[i]

	if prev.Kind == KindPunct && prev.Spacing == SpacingJoint {
		return false
	}
	if cur.IsPunct(CharComma) || cur.IsPunct(CharSemicolon) || cur.IsPunct(CharDot) {
		return false
	}
	if prev.IsPunct(CharDot) {
		return false
	}
	if cur.IsPunct(CharColon) && prev.Kind != KindPunct {
		return false
	}
	// second colon of `::`
	if prev.IsPunct(CharColon) && i >= 2 && tokens[i-2].IsPunct(CharColon) && tokens[i-2].Spacing == SpacingJoint {
		return false
	}
	// end bound of `..=`
	if prev.IsPunct(CharEquals) && i >= 2 && tokens[i-2].IsPunct(CharDot) && tokens[i-2].Spacing == SpacingJoint {
		return false
	}
	if prev.Kind == KindIdent && (cur.IsGroup(DelimParen) || cur.IsGroup(DelimBracket)) {
		return false
	}
	// macro call `name!(...)`
	if prev.Kind == KindIdent && cur.IsPunct(CharBang) && i+1 < len(tokens) && tokens[i+1].Kind == KindGroup {
		return false
	}
	if prev.IsPunct(CharBang) && cur.Kind == KindGroup && i >= 2 && tokens[i-2].Kind == KindIdent {
		return false
	}
	return true
}
