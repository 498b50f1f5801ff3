package seqgen

import (
	"os"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the engine options:
//
//	macro: seq
//	syntax:
//	  marker: "#"
//	  repeat: "*"
//	  splice: "~"
//	max_repetitions: 10000
//	max_depth: 16
//
// Every field is optional; unset fields keep the engine defaults.
type Config struct {
	Macro          string       `yaml:"macro,omitempty"`
	Syntax         SyntaxConfig `yaml:"syntax,omitempty"`
	MaxRepetitions *int64       `yaml:"max_repetitions,omitempty"`
	MaxDepth       *int         `yaml:"max_depth,omitempty"`
}

// SyntaxConfig holds the syntax characters as one-character strings
type SyntaxConfig struct {
	Marker string `yaml:"marker,omitempty"`
	Repeat string `yaml:"repeat,omitempty"`
	Splice string `yaml:"splice,omitempty"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, MetaKeyPath, path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgConfigParse)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field shapes. Whether the characters form a usable
// syntax is checked by New.
func (c *Config) Validate() error {
	syntaxFields := []struct {
		name  string
		value string
	}{
		{ConfigFieldMarker, c.Syntax.Marker},
		{ConfigFieldRepeat, c.Syntax.Repeat},
		{ConfigFieldSplice, c.Syntax.Splice},
	}
	for _, f := range syntaxFields {
		if f.value != "" && len(f.value) != 1 {
			return NewConfigError(ErrMsgConfigSyntaxChar, f.name, f.value, nil)
		}
	}

	if c.Macro != "" && !isIdentifier(c.Macro) {
		return NewConfigError(ErrMsgInvalidMacroName, ConfigFieldMacro, c.Macro, nil)
	}
	if c.MaxRepetitions != nil && *c.MaxRepetitions < 0 {
		return NewConfigError(ErrMsgInvalidLimit, ConfigFieldMaxRepetitions,
			strconv.FormatInt(*c.MaxRepetitions, 10), nil)
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return NewConfigError(ErrMsgInvalidLimit, ConfigFieldMaxDepth, strconv.Itoa(*c.MaxDepth), nil)
	}
	return nil
}

// Options converts the config into engine options. Unset fields produce
// no option.
func (c *Config) Options() []Option {
	var opts []Option

	if c.Macro != "" {
		opts = append(opts, WithMacroName(c.Macro))
	}

	if c.Syntax != (SyntaxConfig{}) {
		syntax := DefaultSyntax()
		if c.Syntax.Marker != "" {
			syntax.Marker = c.Syntax.Marker[0]
		}
		if c.Syntax.Repeat != "" {
			syntax.Repeat = c.Syntax.Repeat[0]
		}
		if c.Syntax.Splice != "" {
			syntax.Splice = c.Syntax.Splice[0]
		}
		opts = append(opts, WithSyntax(syntax))
	}

	if c.MaxRepetitions != nil {
		opts = append(opts, WithMaxRepetitions(*c.MaxRepetitions))
	}
	if c.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	return opts
}
