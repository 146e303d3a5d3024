package lookup

import (
	"regexp"
	"strings"
)

// fillerRe strips conversational filler so the upstream search sees only the
// subject of the question ("please explain what is recursion" → "recursion").
var fillerRe = regexp.MustCompile(`(?i)\b(please|plz|bro|bhai|explain|tell me|what is|who is|whats|what's|about)\b`)

// CleanQuery removes filler words and collapses the whitespace left behind.
func CleanQuery(q string) string {
	cleaned := fillerRe.ReplaceAllString(q, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}
