package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Output formats accepted by the list and show commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root configuration for todo.
type Config struct {
	Output OutputConfig `json:"output"`
	Prompt PromptConfig `json:"prompt"`
	Log    LogConfig    `json:"log"`
}

// OutputConfig controls how tasks are rendered.
type OutputConfig struct {
	Format   string `json:"format"`   // "table" | "json" | "yaml"
	Color    string `json:"color"`    // "auto" | "always" | "never"
	Markdown *bool  `json:"markdown"` // render descriptions as Markdown in show (default true)
}

// MarkdownEnabled reports whether descriptions should go through the Markdown renderer.
func (o OutputConfig) MarkdownEnabled() bool {
	return o.Markdown == nil || *o.Markdown
}

// PromptConfig tunes interactive input.
type PromptConfig struct {
	Symbol      string `json:"symbol"`       // shell prompt
	MaxAttempts int    `json:"max_attempts"` // retries before a prompt gives up
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `json:"level"` // "debug" | "info" | "warn" | "error"
}

// SlogLevel maps Level to a slog.Level. Unknown values fall back to warn.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format: unknown format %q (want %s)", c.Output.Format,
			strings.Join([]string{FormatTable, FormatJSON, FormatYAML}, ", "))
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unknown mode %q (want %s)", c.Output.Color,
			strings.Join([]string{ColorAuto, ColorAlways, ColorNever}, ", "))
	}
	if c.Prompt.MaxAttempts < 1 {
		return fmt.Errorf("prompt.max_attempts: must be at least 1, got %d", c.Prompt.MaxAttempts)
	}
	return nil
}
