package bioread

import (
	"fmt"
	"strings"
)

// Markers frame a rendered span. Either side may be empty, in which case
// nothing is emitted for it.
type Markers struct {
	Open  string
	Close string
}

// Options configures a Reader.
type Options struct {
	// FixationPoint selects the emphasis intensity, 1 through 5. Lower
	// points emphasize more of each word. Zero means DefaultFixationPoint.
	FixationPoint int

	// Emphasis frames the leading part of each word, DeEmphasis the
	// trailing part. Typical values are ANSI bold/faint pairs or markup
	// such as {"**", "**"}.
	Emphasis   Markers
	DeEmphasis Markers
}

// Reader renders text in bionic-reading style. It is immutable after New
// and safe for concurrent use; each Stream call carries its own state.
type Reader struct {
	point      int
	emphasis   Markers
	deEmphasis Markers
	reverse    []int
}

// New builds a Reader for the given options. The fixation point must be
// within [MinFixationPoint, MaxFixationPoint].
func New(opts Options) (*Reader, error) {
	point := opts.FixationPoint
	if point == 0 {
		point = DefaultFixationPoint
	}
	if point < MinFixationPoint || point > MaxFixationPoint {
		return nil, fmt.Errorf("%w: must be in [%d, %d], got %d",
			ErrFixationPoint, MinFixationPoint, MaxFixationPoint, point)
	}

	reverse, err := ReverseBoundaries(Boundaries(point))
	if err != nil {
		return nil, err
	}

	return &Reader{
		point:      point,
		emphasis:   opts.Emphasis,
		deEmphasis: opts.DeEmphasis,
		reverse:    reverse,
	}, nil
}

// FixationPoint returns the fixation point the Reader was built with.
func (r *Reader) FixationPoint() int {
	return r.point
}

// suffixLen returns the de-emphasized tail length for a word of n letters.
func (r *Reader) suffixLen(n int) int {
	if n < len(r.reverse) {
		return r.reverse[n]
	}
	return r.reverse[len(r.reverse)-1] + 1
}

// SplitWord splits a word into its emphasized prefix and de-emphasized
// suffix. Common words always split after the first letter; for everything
// else the suffix length comes from the reverse boundary lookup. The two
// parts always concatenate back to the input.
func (r *Reader) SplitWord(word string) (prefix, suffix string) {
	if isCommonWord(word) {
		return word[:1], word[1:]
	}
	boundary := len(word) - r.suffixLen(len(word))
	return word[:boundary], word[boundary:]
}

// Word renders a single word with the configured markers.
func (r *Reader) Word(word string) string {
	prefix, suffix := r.SplitWord(word)

	var sb strings.Builder
	sb.Grow(len(word) + r.markerLen())
	sb.WriteString(r.emphasis.Open)
	sb.WriteString(prefix)
	sb.WriteString(r.emphasis.Close)
	sb.WriteString(r.deEmphasis.Open)
	sb.WriteString(suffix)
	sb.WriteString(r.deEmphasis.Close)
	return sb.String()
}

// markerLen is the per-word marker overhead in bytes.
func (r *Reader) markerLen() int {
	return len(r.emphasis.Open) + len(r.emphasis.Close) +
		len(r.deEmphasis.Open) + len(r.deEmphasis.Close)
}

// Text renders a whole piece of text. Maximal ASCII-letter runs are
// rendered as words; separators are copied through verbatim, so structure
// such as whitespace, punctuation, and non-ASCII content is preserved.
func (r *Reader) Text(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	start := 0
	inWord := false
	for i := 0; i < len(text); i++ {
		switch letter := isASCIILetter(text[i]); {
		case letter && !inWord:
			sb.WriteString(text[start:i])
			start = i
			inWord = true
		case !letter && inWord:
			sb.WriteString(r.Word(text[start:i]))
			start = i
			inWord = false
		}
	}
	if inWord {
		sb.WriteString(r.Word(text[start:]))
	} else {
		sb.WriteString(text[start:])
	}

	return sb.String()
}
