package configloader

import "github.com/yaklabco/bioread/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
//
// An unset Emphasize or DeEmphasize is the empty string; a template that
// renders empty markers is spelled "{}", so the two never collide.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.FixationPoint != 0 {
		result.FixationPoint = override.FixationPoint
	}
	if override.Emphasize != "" {
		result.Emphasize = override.Emphasize
	}
	if override.DeEmphasize != "" {
		result.DeEmphasize = override.DeEmphasize
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	// Booleans: false is the zero value, so only true can be detected.
	// A config file cannot unset backup once a lower layer enabled it.
	if override.Backup {
		result.Backup = override.Backup
	}

	// Slices: override replaces base entirely if non-nil
	if override.Inputs != nil {
		result.Inputs = override.Inputs
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
