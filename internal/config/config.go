package config

import (
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/dshills/forge/internal/engine"
)

// Config holds every setting.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Syntax SyntaxConfig `toml:"syntax" yaml:"syntax"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig holds buffer settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// LineEnding forces the reported line ending: "lf", "crlf", or "cr".
	// Empty means detect from the file.
	LineEnding string `toml:"line_ending" yaml:"line_ending"`

	// Encoding is used when saving new buffers: "utf-8", "utf-8-bom",
	// "utf-16le", or "utf-16be".
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// SyntaxConfig holds tree-sitter settings.
type SyntaxConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Languages maps extra file extensions to bundled grammar names.
	Languages map[string]string `toml:"languages" yaml:"languages"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: "debug", "info", "warn", or "error".
	Level string `toml:"level" yaml:"level"`

	// Format is "console" or "json".
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth: engine.DefaultTabWidth,
			Encoding: engine.EncodingUTF8.String(),
		},
		Syntax: SyntaxConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var (
	lineEndings = map[string]engine.LineEnding{
		"lf":   engine.LineEndingLF,
		"crlf": engine.LineEndingCRLF,
		"cr":   engine.LineEndingCR,
	}
	encodings = map[string]engine.Encoding{
		engine.EncodingUTF8.String():    engine.EncodingUTF8,
		engine.EncodingUTF8BOM.String(): engine.EncodingUTF8BOM,
		engine.EncodingUTF16LE.String(): engine.EncodingUTF16LE,
		engine.EncodingUTF16BE.String(): engine.EncodingUTF16BE,
	}
	logFormats = []string{"console", "json"}
)

// Validate checks every setting and returns the first problem as a
// *ValidationError.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return &ValidationError{Path: "editor.tab_width", Message: "must be between 1 and 16", Value: c.Editor.TabWidth}
	}
	if _, ok := lineEndings[c.Editor.LineEnding]; c.Editor.LineEnding != "" && !ok {
		return &ValidationError{Path: "editor.line_ending", Message: "must be lf, crlf, or cr", Value: c.Editor.LineEnding}
	}
	if _, ok := encodings[c.Editor.Encoding]; !ok {
		return &ValidationError{Path: "editor.encoding", Message: "unknown encoding", Value: c.Editor.Encoding}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Path: "log.level", Message: "unknown level", Value: c.Log.Level}
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return &ValidationError{Path: "log.format", Message: "must be console or json", Value: c.Log.Format}
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}
