package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/bioread/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	styles := pretty.NewStyles(true, &buf)
	require.NotNil(t, styles)

	// The renderer is forced to ANSI even though buf is not a TTY, so the
	// word-span styles must actually produce escape sequences.
	rendered := styles.Emphasis.Render("word")
	assert.NotEqual(t, "word", rendered, "enabled Emphasis should add formatting")
	assert.Contains(t, rendered, "\x1b[", "expected an ANSI escape")
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	styles := pretty.NewStyles(false, &buf)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	text := "test"
	assert.Equal(t, text, styles.Emphasis.Render(text), "No-color Emphasis should not add formatting")
	assert.Equal(t, text, styles.DeEmphasis.Render(text), "No-color DeEmphasis should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
}

func TestMarkerPair_ColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	styles := pretty.NewStyles(true, &buf)

	em := styles.EmphasisMarkers()
	de := styles.DeEmphasisMarkers()

	assert.NotEmpty(t, em.Open, "emphasis open marker")
	assert.NotEmpty(t, em.Close, "emphasis close marker")
	assert.True(t, strings.HasPrefix(em.Open, "\x1b["), "open marker should be an escape sequence")
	assert.NotEqual(t, em.Open, de.Open, "bold and faint must differ")
	assert.NotContains(t, em.Open, "\x00", "sentinel must not leak into markers")
	assert.NotContains(t, em.Close, "\x00", "sentinel must not leak into markers")
}

func TestMarkerPair_ColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	styles := pretty.NewStyles(false, &buf)

	em := styles.EmphasisMarkers()
	de := styles.DeEmphasisMarkers()

	assert.Empty(t, em.Open)
	assert.Empty(t, em.Close)
	assert.Empty(t, de.Open)
	assert.Empty(t, de.Close)
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	result := pretty.IsColorEnabled("always", &buf)
	assert.True(t, result, "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	result := pretty.IsColorEnabled("never", os.Stdout)
	assert.False(t, result, "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	// bytes.Buffer is not a TTY
	var buf bytes.Buffer
	result := pretty.IsColorEnabled("auto", &buf)
	assert.False(t, result, "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	// Set NO_COLOR environment variable
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	result := pretty.IsColorEnabled("auto", os.Stdout)
	assert.False(t, result, "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	// Clear NO_COLOR if set
	t.Setenv("NO_COLOR", "")

	// Empty or unknown mode should default to auto behavior
	var buf bytes.Buffer
	result := pretty.IsColorEnabled("", &buf)
	assert.False(t, result, "empty mode with non-TTY should return false (auto behavior)")

	result = pretty.IsColorEnabled("unknown", &buf)
	assert.False(t, result, "unknown mode with non-TTY should return false (auto behavior)")
}
