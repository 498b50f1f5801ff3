package main

import (
	"go.uber.org/zap"
)

// ExpandCmd expands one invocation payload such as `N in 0..3 { f~N }`
type ExpandCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"Payload file (- for stdin)"`
	Output string `short:"o" default:"-" help:"Output file (- for stdout)"`
}

// Run executes the expand command
func (cmd *ExpandCmd) Run(app *Context) error {
	app.Logger().Debug(LogMsgCommandStart, zap.String(LogFieldCommand, "expand"), zap.String(LogFieldPath, cmd.File))

	engine, err := app.Engine()
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgEngineFailed, err)
	}

	source, err := readInput(cmd.File, app.Stdin)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgReadInputFailed, err)
	}

	out, err := engine.ExpandSource(string(source))
	if err != nil {
		return app.fail(displayName(cmd.File), string(source), ErrMsgExpandFailed, err)
	}

	if err := writeOutput(cmd.Output, []byte(out+FmtNewline), app.Stdout); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// ProcessCmd rewrites every seq! call site in a source file
type ProcessCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"Source file (- for stdin)"`
	Output string `short:"o" default:"-" help:"Output file (- for stdout)"`
}

// Run executes the process command
func (cmd *ProcessCmd) Run(app *Context) error {
	app.Logger().Debug(LogMsgCommandStart, zap.String(LogFieldCommand, "process"), zap.String(LogFieldPath, cmd.File))

	engine, err := app.Engine()
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgEngineFailed, err)
	}

	source, err := readInput(cmd.File, app.Stdin)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgReadInputFailed, err)
	}

	out, err := engine.ProcessSource(string(source))
	if err != nil {
		return app.fail(displayName(cmd.File), string(source), ErrMsgProcessFailed, err)
	}

	if err := writeOutput(cmd.Output, []byte(out+FmtNewline), app.Stdout); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}
