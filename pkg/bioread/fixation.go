package bioread

import (
	"errors"
	"fmt"
)

// Fixation point bounds. Lower points emphasize a larger share of each word.
const (
	MinFixationPoint     = 1
	MaxFixationPoint     = 5
	DefaultFixationPoint = 3
)

// ErrFixationPoint reports a fixation point outside [MinFixationPoint, MaxFixationPoint].
var ErrFixationPoint = errors.New("fixation point out of range")

// fixationBoundaries holds the word-length thresholds per fixation point.
// The data is reference material from the Bionic Reading method (via
// text-vide) and is carried verbatim, including the stray 0 in the
// point-4 table. Rendered output depends on it byte for byte.
//
//nolint:gochecknoglobals // Read-only reference data.
var fixationBoundaries = [...][]int{
	{0, 4, 12, 17, 24, 29, 35, 42, 48},
	{1, 2, 7, 10, 13, 14, 19, 22, 25, 28, 31, 34, 37, 40, 43, 46, 49},
	{
		1, 2, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31, 33, 35, 37, 39, 41, 43,
		45, 47, 49,
	},
	{
		0, 2, 4, 5, 6, 8, 9, 11, 14, 15, 17, 18, 20, 0, 21, 23, 24, 26, 27, 29, 30, 32, 33,
		35, 36, 38, 39, 41, 42, 44, 45, 47, 48,
	},
	{
		0, 2, 3, 5, 6, 7, 8, 10, 11, 12, 14, 15, 17, 19, 20, 21, 23, 24, 25, 26, 28, 29,
		30, 32, 33, 34, 35, 37, 38, 39, 41, 42, 43, 44, 46, 47, 48,
	},
}

// Boundaries returns the word-length thresholds for the given fixation
// point. Points outside [1, 5] silently fall back to the point-1 table;
// rejecting them is the caller's job. The returned slice is shared and
// must not be modified.
func Boundaries(point int) []int {
	if point < MinFixationPoint || point > MaxFixationPoint {
		return fixationBoundaries[0]
	}
	return fixationBoundaries[point-1]
}

// ReverseBoundaries inverts a threshold table into a by-length lookup:
// reverse[n] is the number of trailing characters de-emphasized in a word
// of n letters. Word lengths past the table map to the last entry plus one.
//
// The inversion is a single forward sweep whose cursor advances at most one
// position per length. That sweep, not a sorted search, is what gives the
// point-4 table (with its embedded 0) its reference behavior.
func ReverseBoundaries(bounds []int) ([]int, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("reverse boundaries: empty table")
	}

	last := bounds[len(bounds)-1]
	reverse := make([]int, last+1)

	cursor := 0
	for n := 0; n <= last; n++ {
		reverse[n] = cursor
		if cursor < len(bounds) && n >= bounds[cursor] {
			cursor++
		}
	}

	return reverse, nil
}
