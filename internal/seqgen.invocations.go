package internal

import (
	"go.uber.org/zap"
)

// RewriterConfig holds rewriter configuration options.
type RewriterConfig struct {
	MacroName string // Name before `!` that marks a call site, default "seq"
	MaxDepth  int    // Maximum nesting of call sites produced by expansion (0 = unlimited)
}

// DefaultRewriterConfig returns the default rewriter configuration.
func DefaultRewriterConfig() RewriterConfig {
	return RewriterConfig{
		MacroName: DefaultMacroName,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Rewriter replaces every `seq!{...}` call site in a token tree with its
// expansion, the way a host macro facility would.
type Rewriter struct {
	expander *Expander
	config   RewriterConfig
	logger   *zap.Logger
}

// NewRewriter creates a rewriter on top of expander.
func NewRewriter(expander *Expander, config RewriterConfig, logger *zap.Logger) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MacroName == "" {
		config.MacroName = DefaultMacroName
	}
	logger.Debug(LogMsgRewriterCreated, zap.String(LogFieldMacro, config.MacroName))

	return &Rewriter{
		expander: expander,
		config:   config,
		logger:   logger,
	}
}

// Rewrite returns tokens with all call sites expanded. Expansions are
// scanned again, so an expansion may itself contain call sites.
func (r *Rewriter) Rewrite(tokens TokenSequence) (TokenSequence, error) {
	return r.rewrite(tokens, 0)
}

func (r *Rewriter) rewrite(tokens TokenSequence, depth int) (TokenSequence, error) {
	out := make(TokenSequence, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if r.isCallSite(tokens, i) {
			group := tokens[i+2]
			r.logger.Debug(LogMsgInvocationFound,
				zap.Int(LogFieldLine, tok.Position.Line),
				zap.Int(LogFieldColumn, tok.Position.Column),
				zap.Int(LogFieldDepth, depth))

			expanded, err := r.expandSite(group, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)

			i += 2
			// `seq!(...);` and `seq![...];` take their statement terminator along
			if !group.IsGroup(DelimBrace) && i+1 < len(tokens) && tokens[i+1].IsPunct(CharSemicolon) {
				i++
			}
			continue
		}

		if tok.Kind == KindGroup {
			inner, err := r.rewrite(tok.Inner, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, tok.WithInner(inner))
			continue
		}

		out = append(out, tok)
	}

	return out, nil
}

// expandSite expands one call site and rewrites call sites in its output
func (r *Rewriter) expandSite(group Token, depth int) (TokenSequence, error) {
	r.logger.Debug(LogMsgRewriteDepthCheck, zap.Int(LogFieldDepth, depth))
	if r.config.MaxDepth > 0 && depth >= r.config.MaxDepth {
		return nil, NewStructureError(ConstructInvocation, ErrMsgRewriteDepthExceeded, group.Position)
	}

	expanded, err := r.expander.Expand(group.Inner)
	if err != nil {
		return nil, err
	}
	return r.rewrite(expanded, depth+1)
}

// isCallSite reports whether tokens[i:] starts with `macro ! group`
func (r *Rewriter) isCallSite(tokens TokenSequence, i int) bool {
	return i+2 < len(tokens) &&
		tokens[i].IsIdent(r.config.MacroName) &&
		tokens[i+1].IsPunct(CharBang) &&
		tokens[i+2].Kind == KindGroup
}
