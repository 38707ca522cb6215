package config

import (
	"strconv"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment variables read by ApplyEnv.
const (
	EnvTabWidth   = "FORGE_TAB_WIDTH"
	EnvLineEnding = "FORGE_LINE_ENDING"
	EnvEncoding   = "FORGE_ENCODING"
	EnvSyntax     = "FORGE_SYNTAX"
	EnvLogLevel   = "FORGE_LOG_LEVEL"
	EnvLogFormat  = "FORGE_LOG_FORMAT"
)

// ApplyEnv overrides settings from environment variables. Empty string
// values are treated as set, not as unset.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvTabWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: EnvTabWidth, Message: "not an integer", Value: v}
		}
		c.Editor.TabWidth = n
	}
	if v, ok := lookup(EnvSyntax); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Path: EnvSyntax, Message: "not a boolean", Value: v}
		}
		c.Syntax.Enabled = b
	}

	strs := []struct {
		env string
		dst *string
	}{
		{EnvLineEnding, &c.Editor.LineEnding},
		{EnvEncoding, &c.Editor.Encoding},
		{EnvLogLevel, &c.Log.Level},
		{EnvLogFormat, &c.Log.Format},
	}
	for _, s := range strs {
		if v, ok := lookup(s.env); ok {
			*s.dst = v
		}
	}
	return nil
}
