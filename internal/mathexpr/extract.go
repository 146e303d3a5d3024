// Package mathexpr extracts arithmetic expressions from free text and
// evaluates them. Extraction is deliberately conservative: a candidate must
// contain at least one operator between digits, so a stray number inside a
// normal sentence is never treated as a calculation.
package mathexpr

import (
	"math"
	"strconv"
	"strings"
)

// Answer extracts an expression from raw text, evaluates it, and formats the
// result as "= <value>". ok is false when the text holds no expression or
// evaluation fails for any reason (syntax error, division by zero,
// non-finite result).
func Answer(raw string) (string, bool) {
	expr, ok := Extract(raw)
	if !ok {
		return "", false
	}
	v, err := Evaluate(expr)
	if err != nil {
		return "", false
	}
	return "= " + formatResult(v), true
}

// Extract returns the first run of expression characters in raw that
// qualifies as an arithmetic expression. Runs glued to word characters are
// trimmed back so "phase 2 report" cannot leak a bare "2". A candidate
// qualifies only when it contains a digit and at least one of + - * / %.
func Extract(raw string) (string, bool) {
	text := strings.ToLower(raw)
	runes := []rune(text)

	for i := 0; i < len(runes); {
		if !exprRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && exprRune(runes[j]) {
			j++
		}

		s, e := trimWordAdjacent(runes, i, j)
		if expr, ok := sanitize(string(runes[s:e])); ok {
			return expr, true
		}
		i = j
	}
	return "", false
}

func exprRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == ' ' || r == '\t':
		return true
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '%' || r == '^':
		return true
	case r == '(' || r == ')':
		return true
	}
	return false
}

// trimWordAdjacent shrinks the run [s,e) until its boundaries no longer touch
// a word character, dropping digit segments glued to letters ("abc5" or
// "5th") from either end.
func trimWordAdjacent(runes []rune, s, e int) (int, int) {
	for s < e && s > 0 && wordRune(runes[s-1]) {
		s++
	}
	for e > s && e < len(runes) && wordRune(runes[e]) {
		e--
	}
	return s, e
}

func wordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// sanitize trims the candidate and enforces the operator policy.
func sanitize(candidate string) (string, bool) {
	expr := strings.TrimSpace(candidate)
	if expr == "" {
		return "", false
	}

	var digits, operators bool
	for _, r := range expr {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '%' || r == '^':
			operators = true
		}
	}
	if !digits || !operators {
		return "", false
	}
	return expr, true
}

func formatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
