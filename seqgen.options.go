package seqgen

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	syntax         Syntax
	macroName      string
	maxRepetitions int64
	maxDepth       int
	logger         *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		syntax:         DefaultSyntax(),
		macroName:      DefaultMacroName,
		maxRepetitions: DefaultMaxRepetitions,
		maxDepth:       DefaultMaxDepth,
		logger:         nil,
	}
}

// WithSyntax sets the marker, repeat and splice characters.
// Default: '#', '*' and '~'
func WithSyntax(syntax Syntax) Option {
	return func(c *engineConfig) {
		c.syntax = syntax
	}
}

// WithMacroName sets the name that marks a call site in Rewrite.
// Default: "seq"
func WithMacroName(name string) Option {
	return func(c *engineConfig) {
		if name != "" {
			c.macroName = name
		}
	}
}

// WithMaxRepetitions caps the number of indices a single invocation may
// produce. Use 0 for no limit.
// Default: 10000
func WithMaxRepetitions(n int64) Option {
	return func(c *engineConfig) {
		c.maxRepetitions = n
	}
}

// WithMaxDepth sets the maximum nesting of call sites produced by
// expansion. Use 0 for unlimited depth.
// Default: 16
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
