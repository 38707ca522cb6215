package config

import (
	"github.com/dshills/forge/internal/engine"
	"github.com/dshills/forge/internal/engine/syntax"
)

// Registry returns the bundled grammars plus the configured extension
// aliases.
func (c *Config) Registry() (*syntax.Registry, error) {
	reg := syntax.DefaultRegistry()
	for ext, name := range c.Syntax.Languages {
		if err := reg.Alias(ext, name); err != nil {
			return nil, &ValidationError{Path: "syntax.languages", Message: err.Error(), Value: ext}
		}
	}
	return reg, nil
}

// BufferOptions turns the configuration into engine options.
func (c *Config) BufferOptions() ([]engine.Option, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithTabWidth(c.Editor.TabWidth),
		engine.WithEncoding(encodings[c.Editor.Encoding]),
		engine.WithSyntax(c.Syntax.Enabled),
		engine.WithRegistry(reg),
	}
	if le, ok := lineEndings[c.Editor.LineEnding]; ok {
		opts = append(opts, engine.WithLineEnding(le))
	}
	return opts, nil
}
