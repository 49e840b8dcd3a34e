package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxRunes caps the length of a stored label.
const MaxRunes = 64

// Normalize prepares a label for storage: it composes the string to NFC,
// replaces control characters (including newlines) with spaces, trims
// surrounding space and truncates to MaxRunes runes.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	n := 0
	for i := range s {
		if n == MaxRunes {
			return strings.TrimSpace(s[:i])
		}
		n++
	}
	return s
}
