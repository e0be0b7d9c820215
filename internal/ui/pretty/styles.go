// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/yaklabco/bioread/pkg/bioread"
)

// Styles contains the styled renderers for bioread output.
type Styles struct {
	// Word spans. Emphasis leads each word, DeEmphasis trails it.
	Emphasis   lipgloss.Style
	DeEmphasis lipgloss.Style

	// CLI chrome
	Error   lipgloss.Style
	Success lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates styles bound to the given writer. With color enabled
// the renderer is forced to at least basic ANSI, so --color always works
// on pipes where profile detection would otherwise degrade to plain text.
func NewStyles(colorEnabled bool, w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if colorEnabled {
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Emphasis:   renderer.NewStyle().Bold(true),
		DeEmphasis: renderer.NewStyle().Faint(true),

		Error:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Dim:     renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    renderer.NewStyle().Bold(true),
	}
}

// markerSentinel is rendered through a style and cut back out to recover
// the ANSI sequences on either side. NUL never appears in styled text.
const markerSentinel = "\x00"

// MarkerPair recovers a style's opening and closing escape sequences as a
// marker pair. A style that renders to plain text yields empty markers.
func MarkerPair(style lipgloss.Style) bioread.Markers {
	rendered := style.Render(markerSentinel)
	open, closeSeq, found := strings.Cut(rendered, markerSentinel)
	if !found {
		return bioread.Markers{}
	}
	return bioread.Markers{Open: open, Close: closeSeq}
}

// EmphasisMarkers returns the terminal-default markers for the leading
// part of each word.
func (s *Styles) EmphasisMarkers() bioread.Markers {
	return MarkerPair(s.Emphasis)
}

// DeEmphasisMarkers returns the terminal-default markers for the trailing
// part of each word.
func (s *Styles) DeEmphasisMarkers() bioread.Markers {
	return MarkerPair(s.DeEmphasis)
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
