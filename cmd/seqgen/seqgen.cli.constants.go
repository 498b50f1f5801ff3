package main

// Input and output indicators
const (
	InputSourceStdin   = "-"
	OutputTargetStdout = "-"
	StdinDisplayName   = "<stdin>"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Error messages - ALL must be constants
const (
	ErrMsgUsage             = "invalid usage"
	ErrMsgCommandFailed     = "command failed"
	ErrMsgEngineFailed      = "failed to configure engine"
	ErrMsgReadInputFailed   = "failed to read input"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgExpandFailed      = "expansion failed"
	ErrMsgProcessFailed     = "processing failed"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Diagnostic rendering
const (
	FmtDiagnosticLocation = "%s:%d:%d:"
	FmtDiagnosticFile     = "%s:"
	FmtDiagnosticKind     = " %s error:"
	FmtDiagnosticMessage  = " %s\n"
	FmtSnippetLine        = "%*d | "
	FmtSnippetGutter      = "%*s | "
	FmtSnippetText        = "%s\n"
	SnippetCaret          = "^"
)

// Check output
const (
	CheckTextSuccess = "%s: OK\n"
)

// Version output format templates
const (
	VersionTextTemplate = "go-seqgen version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// CLI metadata
const (
	CLIName        = "seqgen"
	CLIDescription = "Expand seq! repetition invocations over token trees"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtNewline        = "\n"
)

// Log message constants
const (
	LogMsgConfigLoaded = "config loaded"
	LogMsgCommandStart = "running command"
	LogFieldPath       = "path"
	LogFieldCommand    = "command"
)
