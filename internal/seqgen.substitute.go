package internal

import "strconv"

// Substitute rewrites tokens for one index. `X~N` becomes the identifier
// X<index> at X's position, a bare N becomes the numeral <index> at N's
// position, and groups are rebuilt around their substituted contents. The
// input is never modified.
func Substitute(tokens TokenSequence, placeholder string, index uint64, syntax Syntax) TokenSequence {
	numeral := strconv.FormatUint(index, 10)
	return substitute(tokens, placeholder, numeral, syntax)
}

func substitute(tokens TokenSequence, placeholder, numeral string, syntax Syntax) TokenSequence {
	out := make(TokenSequence, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case KindIdent:
			// splice is checked first so its placeholder is never replaced on its own
			if i+2 < len(tokens) && tokens[i+1].IsPunct(syntax.Splice) && tokens[i+2].IsIdent(placeholder) {
				out = append(out, NewIdent(tok.Text+numeral, tok.Position))
				i += 2
				continue
			}
			if tok.Text == placeholder {
				out = append(out, NewLiteral(numeral, tok.Position))
				continue
			}
			out = append(out, tok)

		case KindGroup:
			out = append(out, tok.WithInner(substitute(tok.Inner, placeholder, numeral, syntax)))

		default:
			out = append(out, tok)
		}
	}

	return out
}

// ValidateSplices checks every splice in the tree: an identifier followed
// by the splice punct must be followed by another identifier.
func ValidateSplices(tokens TokenSequence, syntax Syntax) error {
	for i, tok := range tokens {
		switch {
		case tok.Kind == KindGroup:
			if err := ValidateSplices(tok.Inner, syntax); err != nil {
				return err
			}
		case tok.Kind == KindIdent && i+1 < len(tokens) && tokens[i+1].IsPunct(syntax.Splice):
			if i+2 >= len(tokens) || tokens[i+2].Kind != KindIdent {
				return NewSyntaxError(ConstructSplice, ErrMsgSpliceNoIdent, tokens[i+1].Position)
			}
		}
	}
	return nil
}
