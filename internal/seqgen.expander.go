package internal

import (
	"errors"

	"go.uber.org/zap"
)

// ExpanderConfig holds expander configuration options.
type ExpanderConfig struct {
	Syntax         Syntax
	MaxRepetitions uint64 // Maximum number of indices per invocation (0 = unlimited)
}

// DefaultExpanderConfig returns the default expander configuration.
func DefaultExpanderConfig() ExpanderConfig {
	return ExpanderConfig{
		Syntax:         DefaultSyntax(),
		MaxRepetitions: DefaultMaxRepetitions,
	}
}

// Expander turns one invocation payload into its expansion. It keeps no
// state between calls.
type Expander struct {
	config ExpanderConfig
	logger *zap.Logger
}

// NewExpander creates a new expander with the given configuration.
func NewExpander(config ExpanderConfig, logger *zap.Logger) *Expander {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExpanderCreated)

	return &Expander{
		config: config,
		logger: logger,
	}
}

// Expand parses `N in start..end { body }` and returns the expanded token
// sequence. Every failure aborts the whole expansion; no partial output is
// returned.
func (e *Expander) Expand(invocation TokenSequence) (TokenSequence, error) {
	e.logger.Debug(LogMsgExpandStart, zap.Int(LogFieldTokens, len(invocation)))

	spec, err := ParseHeader(invocation)
	if err != nil {
		return nil, e.fail(err)
	}
	e.logger.Debug(LogMsgHeaderParsed,
		zap.String(LogFieldPlaceholder, spec.Placeholder.Text),
		zap.Bool(LogFieldInclusive, spec.Inclusive))

	out, err := e.ExpandSpec(spec)
	if err != nil {
		return nil, e.fail(err)
	}

	e.logger.Debug(LogMsgExpandEnd, zap.Int(LogFieldTokens, len(out)))
	return out, nil
}

// Validate runs every check Expand runs without building the output.
func (e *Expander) Validate(invocation TokenSequence) error {
	spec, err := ParseHeader(invocation)
	if err != nil {
		return e.fail(err)
	}
	if _, _, err := e.prepare(spec); err != nil {
		return e.fail(err)
	}
	return nil
}

// ExpandSpec expands an already parsed invocation.
func (e *Expander) ExpandSpec(spec *ExpansionSpec) (TokenSequence, error) {
	rng, mode, err := e.prepare(spec)
	if err != nil {
		return nil, err
	}

	placeholder := spec.Placeholder.Text
	if mode.Kind == ModeDirect {
		return e.repeat(spec.Body, placeholder, rng), nil
	}

	var inner TokenSequence
	inner = append(inner, mode.Prefix...)
	inner = append(inner, e.repeat(mode.Marked, placeholder, rng)...)
	inner = append(inner, mode.Suffix...)

	// rebuild enclosing groups from the innermost out
	for i := len(mode.Enclosing) - 1; i >= 0; i-- {
		enc := mode.Enclosing[i]
		var seq TokenSequence
		seq = append(seq, enc.Prefix...)
		seq = append(seq, enc.Group.WithInner(inner))
		seq = append(seq, enc.Suffix...)
		inner = seq
	}

	return nonNil(inner), nil
}

// prepare evaluates the range, selects the mode and validates splices.
// Nothing is substituted until all three succeed.
func (e *Expander) prepare(spec *ExpansionSpec) (Range, ExpansionMode, error) {
	rng, err := EvaluateRange(spec, e.config.MaxRepetitions)
	if err != nil {
		return Range{}, ExpansionMode{}, err
	}
	e.logger.Debug(LogMsgRangeEvaluated,
		zap.Uint64(LogFieldStart, rng.Start),
		zap.Uint64(LogFieldEnd, rng.End),
		zap.Uint64(LogFieldCount, rng.Len()))

	mode, err := DetectMode(spec.Body, e.config.Syntax)
	if err != nil {
		return Range{}, ExpansionMode{}, err
	}
	e.logger.Debug(LogMsgModeSelected, zap.Stringer(LogFieldMode, mode.Kind))

	if err := ValidateSplices(spec.Body, e.config.Syntax); err != nil {
		return Range{}, ExpansionMode{}, err
	}
	return rng, mode, nil
}

// repeat concatenates one substituted copy of tokens per index
func (e *Expander) repeat(tokens TokenSequence, placeholder string, rng Range) TokenSequence {
	out := TokenSequence{}
	for index := range rng.Indices() {
		out = append(out, Substitute(tokens, placeholder, index, e.config.Syntax)...)
	}
	return out
}

func (e *Expander) fail(err error) error {
	var perr *Error
	if errors.As(err, &perr) {
		e.logger.Debug(LogMsgExpandFailed,
			zap.String(LogFieldError, perr.Message),
			zap.Int(LogFieldLine, perr.Position.Line),
			zap.Int(LogFieldColumn, perr.Position.Column))
	}
	return err
}

func nonNil(seq TokenSequence) TokenSequence {
	if seq == nil {
		return TokenSequence{}
	}
	return seq
}
