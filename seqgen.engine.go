package seqgen

import (
	"strconv"

	"github.com/itsatony/go-seqgen/internal"
	"go.uber.org/zap"
)

// Engine expands sequence invocations. It holds only configuration, so a
// single Engine can be shared between goroutines.
type Engine struct {
	config   *engineConfig
	expander *internal.Expander
	rewriter *internal.Rewriter
	logger   *zap.Logger
}

// New creates a new seqgen Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	expander := internal.NewExpander(internal.ExpanderConfig{
		Syntax:         config.syntax,
		MaxRepetitions: uint64(config.maxRepetitions),
	}, logger)

	rewriter := internal.NewRewriter(expander, internal.RewriterConfig{
		MacroName: config.macroName,
		MaxDepth:  config.maxDepth,
	}, logger)

	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldMacro, config.macroName),
		zap.String(LogFieldSyntax, syntaxString(config.syntax)))

	return &Engine{
		config:   config,
		expander: expander,
		rewriter: rewriter,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Expand expands one invocation payload, `N in start..end { body }`, into
// its replacement token tree. On failure the result is nil and the error
// carries the diagnostic (see AsDiagnostic).
func (e *Engine) Expand(invocation TokenSequence) (TokenSequence, error) {
	out, err := e.expander.Expand(invocation)
	if err != nil {
		return nil, wrapError(ErrMsgExpansionFailed, err)
	}
	return out, nil
}

// ExpandSource tokenizes an invocation payload, expands it and prints the
// result.
func (e *Engine) ExpandSource(source string) (string, error) {
	tokens, err := tokenize(source, e.logger)
	if err != nil {
		return "", err
	}
	out, err := e.Expand(tokens)
	if err != nil {
		return "", err
	}
	return Print(out), nil
}

// Check validates an invocation payload without building the expansion.
func (e *Engine) Check(invocation TokenSequence) error {
	if err := e.expander.Validate(invocation); err != nil {
		return wrapError(ErrMsgExpansionFailed, err)
	}
	return nil
}

// CheckSource tokenizes and validates an invocation payload.
func (e *Engine) CheckSource(source string) error {
	tokens, err := tokenize(source, e.logger)
	if err != nil {
		return err
	}
	return e.Check(tokens)
}

// Rewrite replaces every `seq!` call site in tokens with its expansion.
// Call sites produced by an expansion are expanded too.
func (e *Engine) Rewrite(tokens TokenSequence) (TokenSequence, error) {
	out, err := e.rewriter.Rewrite(tokens)
	if err != nil {
		return nil, wrapError(ErrMsgRewriteFailed, err)
	}
	return out, nil
}

// ProcessSource tokenizes a whole source file, rewrites its call sites and
// prints the result.
func (e *Engine) ProcessSource(source string) (string, error) {
	tokens, err := tokenize(source, e.logger)
	if err != nil {
		return "", err
	}
	out, err := e.Rewrite(tokens)
	if err != nil {
		return "", err
	}
	return Print(out), nil
}

// Syntax returns the repetition syntax in use
func (e *Engine) Syntax() Syntax {
	return e.config.syntax
}

// MacroName returns the call site name used by Rewrite
func (e *Engine) MacroName() string {
	return e.config.macroName
}

func (c *engineConfig) validate() error {
	if err := c.syntax.Validate(); err != nil {
		return NewConfigError(ErrMsgInvalidSyntax, ConfigFieldSyntax, syntaxString(c.syntax), err)
	}
	if !isIdentifier(c.macroName) {
		return NewConfigError(ErrMsgInvalidMacroName, ConfigFieldMacro, c.macroName, nil)
	}
	if c.maxRepetitions < 0 {
		return NewConfigError(ErrMsgInvalidLimit, ConfigFieldMaxRepetitions,
			strconv.FormatInt(c.maxRepetitions, 10), nil)
	}
	if c.maxDepth < 0 {
		return NewConfigError(ErrMsgInvalidLimit, ConfigFieldMaxDepth, strconv.Itoa(c.maxDepth), nil)
	}
	return nil
}

func syntaxString(s Syntax) string {
	return string([]byte{s.Marker, s.Repeat, s.Splice})
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		if !letter && (i == 0 || ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

// Expand expands one invocation payload with a default Engine.
func Expand(invocation TokenSequence) (TokenSequence, error) {
	return MustNew().Expand(invocation)
}

// ExpandSource expands an invocation payload given as text with a default
// Engine.
func ExpandSource(source string) (string, error) {
	return MustNew().ExpandSource(source)
}
