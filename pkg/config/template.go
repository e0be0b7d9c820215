package config

// GenerateTemplate creates a commented starter configuration file.
// Every knob ships commented out at its default so the file is inert
// until edited.
func GenerateTemplate() []byte {
	return []byte(`# bioread configuration
# See: https://github.com/yaklabco/bioread

# Fixation point: 1 (strongest emphasis) through 5 (lightest)
# fixation_point: 3

# Marker templates wrapped around each word part. {} marks the word part.
# Empty means terminal styling (bold / faint) when color is enabled.
# emphasize: "**{}**"
# de_emphasize: ""

# Input interpretation: auto, text, or markdown.
# auto renders .md/.markdown files as Markdown and everything else as text.
# format: auto

# ANSI styling: auto, always, or never
# color: auto

# Keep a sidecar copy (file + .bioread.bak) before -o overwrites a file.
# backup: false
`)
}
