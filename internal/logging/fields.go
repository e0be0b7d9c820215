package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Rendering fields.
	FieldFixationPoint = "fixation_point"
	FieldFormat        = "format"
	FieldColor         = "color"
	FieldBytes         = "bytes"

	// Configuration fields.
	FieldSource     = "source"
	FieldConfigFile = "config_file"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
