// Package config loads the settings that shape a forge buffer.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← FORGE_TAB_WIDTH, FORGE_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← forge.toml or forge.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file format follows the extension: .toml, .yaml, or .yml. A
// missing file is not an error; the defaults apply.
//
// # Basic Usage
//
//	cfg, err := config.Load("forge.toml")
//	if err != nil {
//		return err
//	}
//	logger, err := cfg.NewLogger()
//	if err != nil {
//		return err
//	}
//	opts, err := cfg.BufferOptions()
//	if err != nil {
//		return err
//	}
//	b, err := engine.Open(path, append(opts, engine.WithLogger(logger))...)
//
// # Example File
//
//	[editor]
//	tab_width = 8
//	line_ending = "lf"
//	encoding = "utf-8"
//
//	[syntax]
//	enabled = true
//
//	[syntax.languages]
//	".tmpl" = "html"
//
//	[log]
//	level = "debug"
//	format = "json"
package config
