package seqgen

import "github.com/itsatony/go-seqgen/internal"

// Default syntax characters
const (
	DefaultMarker = internal.DefaultMarker
	DefaultRepeat = internal.DefaultRepeat
	DefaultSplice = internal.DefaultSplice
)

// Default engine settings
const (
	DefaultMacroName      = internal.DefaultMacroName
	DefaultMaxRepetitions = internal.DefaultMaxRepetitions
	DefaultMaxDepth       = internal.DefaultMaxDepth
)

// Default config file name, looked up by the CLI when --config is not given
const DefaultConfigFile = "seqgen.yaml"

// Error code constants for categorization
const (
	ErrCodeSyntax    = "SEQGEN_SYNTAX"
	ErrCodeRange     = "SEQGEN_RANGE"
	ErrCodeStructure = "SEQGEN_STRUCTURE"
	ErrCodeConfig    = "SEQGEN_CONFIG"
)

// Error message constants - ALL error messages must be constants
const (
	ErrMsgTokenizeFailed   = "tokenization failed"
	ErrMsgExpansionFailed  = "expansion failed"
	ErrMsgRewriteFailed    = "invocation rewrite failed"
	ErrMsgInvalidSyntax    = "invalid repetition syntax"
	ErrMsgInvalidMacroName = "macro name must be an identifier"
	ErrMsgInvalidLimit     = "limit must not be negative"
	ErrMsgConfigRead       = "failed to read config file"
	ErrMsgConfigParse      = "failed to parse config file"
	ErrMsgConfigSyntaxChar = "syntax entry must be a single character"
)

// Metadata keys attached to errors
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeyKind      = "kind"
	MetaKeyConstruct = "construct"
	MetaKeyField     = "field"
	MetaKeyValue     = "value"
	MetaKeyPath      = "path"
)

// Config field names used in error metadata
const (
	ConfigFieldMacro          = "macro"
	ConfigFieldSyntax         = "syntax"
	ConfigFieldMarker         = "syntax.marker"
	ConfigFieldRepeat         = "syntax.repeat"
	ConfigFieldSplice         = "syntax.splice"
	ConfigFieldMaxRepetitions = "max_repetitions"
	ConfigFieldMaxDepth       = "max_depth"
)

// Log message constants
const (
	LogMsgEngineCreated = "engine created"
	LogMsgConfigLoaded  = "config loaded"
	LogFieldMacro       = "macro"
	LogFieldSyntax      = "syntax"
	LogFieldPath        = "path"
)

// Diagnostic format
const (
	FmtDiagnostic = "%s error: %s at %s"
)
