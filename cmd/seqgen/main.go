package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the command-line interface
type CLI struct {
	Config  string `help:"Configuration file path (default: seqgen.yaml when present)"`
	Verbose bool   `help:"Enable debug logging" short:"v"`
	NoColor bool   `help:"Disable colored diagnostics"`

	Expand  ExpandCmd  `cmd:"" help:"Expand a single invocation payload"`
	Process ProcessCmd `cmd:"" help:"Expand every seq! call site in a source file"`
	Check   CheckCmd   `cmd:"" help:"Validate an invocation payload without expanding it"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// exitError carries the exit code of a failed command. A nil err means the
// failure was already reported.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newExitError(code int, msg string, err error) error {
	return &exitError{code: code, msg: msg, err: err}
}

// kongExit is raised by kong's exit hook so that --help returns from run
type kongExit int

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(kongExit)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(CLIName),
		kong.Description(CLIDescription),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(kongExit(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
		return ExitCodeError
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUsage, err)
		return ExitCodeUsageError
	}

	app := &Context{
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  cli.Config,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
	}
	defer app.Close()

	if err := kctx.Run(app); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.err != nil {
				fmt.Fprintf(stderr, FmtErrorWithCause, exitErr.msg, exitErr.err)
			}
			return exitErr.code
		}
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}
