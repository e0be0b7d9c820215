package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/bioread/pkg/config"
)

// envVarPrefix is the prefix for all bioread environment variables.
const envVarPrefix = "BIOREAD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FIXATION_POINT": {field: "fixation_point", typ: envTypeInt},
	"EMPHASIZE":      {field: "emphasize", typ: envTypeString},
	"DE_EMPHASIZE":   {field: "de_emphasize", typ: envTypeString},
	"FORMAT":         {field: "format", typ: envTypeString},
	"COLOR":          {field: "color", typ: envTypeString},
	"NO_COLOR":       {field: "no_color", typ: envTypeBool},
	"BACKUP":         {field: "backup", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BIOREAD_ (e.g., BIOREAD_FIXATION_POINT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "emphasize":
		cfg.Emphasize = value
	case "de_emphasize":
		cfg.DeEmphasize = value
	case "format":
		cfg.Format = config.Format(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "no_color":
		if value {
			cfg.Color = config.ColorNever
		}
	case "backup":
		cfg.Backup = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "fixation_point":
		cfg.FixationPoint = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"BIOREAD_FIXATION_POINT": "Fixation point: 1 (strongest) to 5 (weakest)",
		"BIOREAD_EMPHASIZE":      "Emphasis marker template, e.g. \"<b>{}</b>\"",
		"BIOREAD_DE_EMPHASIZE":   "De-emphasis marker template, e.g. \"<span>{}</span>\"",
		"BIOREAD_FORMAT":         "Input format: auto, text, or markdown",
		"BIOREAD_COLOR":          "Color mode: auto, always, or never",
		"BIOREAD_NO_COLOR":       "Disable color output: true or false",
		"BIOREAD_BACKUP":         "Keep a .bioread.bak copy before overwriting: true or false",
	}
}
