package match

import "strings"

// Similarity scores how well a candidate phrase matches the input text on a
// 0..1 scale. The strategy is weighted character overlap: the lengths of the
// candidate's tokens that appear as substrings of the input are summed and
// divided by the longer of the two strings. A verbatim occurrence of the
// candidate therefore scores close to the ratio of its length to the input
// length, and an input that is exactly the candidate scores 1.
//
// Both arguments are normalized internally, so callers may pass raw text.
// Empty input or candidate scores 0.
func Similarity(input, candidate string) float64 {
	a := Normalize(input)
	b := Normalize(candidate)
	if a == "" || b == "" {
		return 0
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	var matched int
	for _, tok := range strings.Fields(b) {
		if strings.Contains(a, tok) {
			matched += len(tok)
		}
	}
	return float64(matched) / float64(longest)
}
