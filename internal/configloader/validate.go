package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/bioread/pkg/bioread"
	"github.com/yaklabco/bioread/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "fixation_point").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., suspicious marker templates).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate fixation_point
	if cfg.FixationPoint != 0 &&
		(cfg.FixationPoint < bioread.MinFixationPoint || cfg.FixationPoint > bioread.MaxFixationPoint) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "fixation_point",
			Value:   cfg.FixationPoint,
			Message: fmt.Sprintf("fixation point must be between %d and %d", bioread.MinFixationPoint, bioread.MaxFixationPoint),
		})
	}

	// Validate marker templates
	validateMarkerTemplate(result, "emphasize", cfg.Emphasize)
	validateMarkerTemplate(result, "de_emphasize", cfg.DeEmphasize)

	// Validate format
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: auto, text, markdown", cfg.Format),
		})
	}

	// Validate color
	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	return result
}

// validateMarkerTemplate checks a marker template for errors and warnings.
// Templates are split at the first {}; extra placeholders stay literal in the
// close marker, which is almost never what the user meant.
func validateMarkerTemplate(result *ValidationResult, field, template string) {
	if template == "" {
		return
	}

	if _, err := config.ParseMarkerTemplate(template); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   template,
			Message: fmt.Sprintf("marker template must contain %q", config.MarkerPlaceholder),
		})
		return
	}

	if strings.Count(template, config.MarkerPlaceholder) > 1 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   field,
			Value:   template,
			Message: fmt.Sprintf("template contains multiple %q placeholders; only the first is substituted", config.MarkerPlaceholder),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
