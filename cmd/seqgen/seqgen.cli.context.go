package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/itsatony/go-seqgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Context represents the global context for commands
type Context struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Config  string
	Verbose bool
	NoColor bool

	logger *zap.Logger
}

// Logger returns the command logger. Verbose mode logs at debug level to
// stderr; otherwise logging is disabled.
func (c *Context) Logger() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	if !c.Verbose {
		c.logger = zap.NewNop()
		return c.logger
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(c.Stderr), zapcore.DebugLevel)
	c.logger = zap.New(core)
	return c.logger
}

// Close flushes the logger
func (c *Context) Close() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// Engine builds an engine from the config file and the global flags.
// An explicit --config must exist; the default file is optional.
func (c *Context) Engine() (*seqgen.Engine, error) {
	logger := c.Logger()
	opts := []seqgen.Option{seqgen.WithLogger(logger)}

	path := c.Config
	if path == "" {
		if _, err := os.Stat(seqgen.DefaultConfigFile); err == nil {
			path = seqgen.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if path != "" {
		cfg, err := seqgen.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		logger.Debug(LogMsgConfigLoaded, zap.String(LogFieldPath, path))
		opts = append(opts, cfg.Options()...)
	}

	return seqgen.New(opts...)
}

// fail turns an engine error into an exit error. Expansion diagnostics are
// rendered against the source and exit with the validation code.
func (c *Context) fail(name, source, msg string, err error) error {
	if diag, ok := seqgen.AsDiagnostic(err); ok {
		printDiagnostic(c.Stderr, name, source, diag, c.NoColor)
		return newExitError(ExitCodeValidationError, msg, nil)
	}
	return newExitError(ExitCodeError, msg, err)
}
