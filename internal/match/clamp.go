package match

import (
	"strings"
	"unicode/utf8"
)

// Clamp truncates text to at most max bytes, preferring to cut at a sentence
// boundary. When truncation happens an ellipsis is appended. Text at or under
// the limit is returned unchanged.
func Clamp(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}

	// Don't split a multi-byte rune.
	end := max
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}
	cut := text[:end]

	// Walk back to the last sentence terminator followed by a space.
	if idx := lastSentenceEnd(cut); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut) + "…"
}

func lastSentenceEnd(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == ' ' {
			switch s[i-1] {
			case '.', '!', '?':
				return i
			}
		}
	}
	return 0
}

// Title renders a snake_case dataset key as a display heading:
// "data_visualization" becomes "Data Visualization".
func Title(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
