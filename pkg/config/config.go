// Package config defines core configuration types for bioread.
// These types are pure data structures; loading, precedence, and
// validation against the environment live in internal/configloader.
package config

import (
	"github.com/yaklabco/bioread/pkg/bioread"
)

// ColorMode controls when ANSI styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is a known value.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Format selects how input is interpreted.
type Format string

const (
	// FormatAuto picks FormatMarkdown for .md/.markdown files and
	// FormatText for everything else, including stdin.
	FormatAuto     Format = "auto"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// IsValid returns true if the format is a known value.
func (f Format) IsValid() bool {
	switch f {
	case FormatAuto, FormatText, FormatMarkdown:
		return true
	default:
		return false
	}
}

// MarkdownExtensions are the file extensions FormatAuto treats as Markdown.
//
//nolint:gochecknoglobals // Read-only lookup shared across packages.
var MarkdownExtensions = []string{".md", ".markdown"}

// Config is the root configuration structure for bioread.
type Config struct {
	// FixationPoint selects the emphasis intensity, 1 (strongest) through
	// 5 (lightest). Zero means unset; the loader fills in the default.
	FixationPoint int `yaml:"fixation_point"`

	// Emphasize and DeEmphasize are marker templates with a {} placeholder
	// marking where the word part goes, e.g. "**{}**" or "<em>{}</em>".
	// Empty means the terminal styling default (bold / faint).
	Emphasize   string `yaml:"emphasize"`
	DeEmphasize string `yaml:"de_emphasize"`

	// Format selects the input interpretation: auto, text, or markdown.
	Format Format `yaml:"format"`

	// Color controls ANSI output: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// Backup writes a sidecar copy (path + ".bioread.bak") before the
	// output overwrites an existing file.
	Backup bool `yaml:"backup"`

	// CLI-level options (not persisted to config files).

	// Inputs are the paths to render, in order; empty means stdin.
	Inputs []string `yaml:"-"`

	// Output is the destination path; empty means stdout.
	Output string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		FixationPoint: bioread.DefaultFixationPoint,
		Format:        FormatAuto,
		Color:         ColorAuto,
	}
}
