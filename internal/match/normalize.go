// Package match provides text normalization and similarity scoring for
// intent matching. All matching elsewhere in the codebase goes through
// Normalize first, so cue phrases and user input compare on equal footing.
package match

import (
	"strings"
	"unicode"
)

// possessive suffixes removed before character filtering, so "chaitanya's
// skills" matches the cue "chaitanya skills".
var possessives = strings.NewReplacer("'s", " ", "’s", " ")

// Normalize lowercases text, strips possessive suffixes, replaces any
// character outside the allowed set with a space, and collapses runs of
// whitespace. The allowed set is word characters, whitespace, the Devanagari
// block (the datasets mix Hindi phrases into patterns and responses), and the
// math/sentence symbols the arithmetic extractor needs to survive
// normalization.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = possessives.Replace(t)

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		return true
	case unicode.IsSpace(r):
		return true
	case r >= 0x0900 && r <= 0x097F: // Devanagari
		return true
	}
	switch r {
	case '+', '-', '*', '/', '%', '(', ')', '.', '!', '?', '\'':
		return true
	}
	return false
}

// ContainsAny reports whether text contains any of the given substrings.
// Empty needles never match.
func ContainsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}
