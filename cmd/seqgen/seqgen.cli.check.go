package main

import (
	"fmt"

	"go.uber.org/zap"
)

// CheckCmd validates invocation payloads without expanding them
type CheckCmd struct {
	Files []string `arg:"" optional:"" help:"Payload files (- or none for stdin)"`
}

// Run executes the check command. A failing file does not stop the
// remaining files.
func (cmd *CheckCmd) Run(app *Context) error {
	engine, err := app.Engine()
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgEngineFailed, err)
	}

	files := cmd.Files
	if len(files) == 0 {
		files = []string{InputSourceStdin}
	}

	var failure error
	for _, path := range files {
		app.Logger().Debug(LogMsgCommandStart, zap.String(LogFieldCommand, "check"), zap.String(LogFieldPath, path))

		source, err := readInput(path, app.Stdin)
		if err != nil {
			return newExitError(ExitCodeInputError, ErrMsgReadInputFailed, err)
		}

		if err := engine.CheckSource(string(source)); err != nil {
			failure = app.fail(displayName(path), string(source), ErrMsgExpandFailed, err)
			continue
		}
		fmt.Fprintf(app.Stdout, CheckTextSuccess, displayName(path))
	}
	return failure
}
