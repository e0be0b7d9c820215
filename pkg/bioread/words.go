package bioread

import "strings"

// commonWords are high-frequency English words that read better with only
// their first letter emphasized. Splitting them by table would swallow
// most of the word into the emphasized span.
//
//nolint:gochecknoglobals // Read-only reference data.
var commonWords = map[string]struct{}{
	"the": {}, "and": {}, "in": {}, "on": {}, "at": {}, "by": {}, "with": {},
	"about": {}, "against": {}, "between": {}, "into": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"to": {}, "from": {}, "up": {}, "down": {}, "over": {}, "under": {},
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {},
	"any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {},
}

// isCommonWord reports whether word is on the common-word list, ignoring case.
func isCommonWord(word string) bool {
	_, ok := commonWords[strings.ToLower(word)]
	return ok
}

// isASCIILetter reports whether b is an ASCII letter. Words are maximal
// runs of ASCII letters; every other byte is a separator, so multi-byte
// UTF-8 sequences pass through untouched.
func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
