package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/bioread/pkg/bioread"
)

// MarkerPlaceholder marks where the word part goes in a marker template.
const MarkerPlaceholder = "{}"

// ErrMarkerTemplate reports a marker template without a {} placeholder.
var ErrMarkerTemplate = errors.New("marker template missing {} placeholder")

// ParseMarkerTemplate splits a template like "**{}**" at its first {}
// into the surrounding marker pair. An empty template yields empty
// markers; a non-empty template without a placeholder is an error.
func ParseMarkerTemplate(template string) (bioread.Markers, error) {
	if template == "" {
		return bioread.Markers{}, nil
	}

	open, closeMark, found := strings.Cut(template, MarkerPlaceholder)
	if !found {
		return bioread.Markers{}, fmt.Errorf("%w: %q", ErrMarkerTemplate, template)
	}

	return bioread.Markers{Open: open, Close: closeMark}, nil
}
