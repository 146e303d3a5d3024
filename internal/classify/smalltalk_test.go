package classify

import (
	"testing"

	"github.com/ckkulkarni/tatvam/internal/knowledge"
)

// pickFirst is the deterministic stand-in for random selection.
func pickFirst(n int) int { return 0 }

func testIntents() []knowledge.SmalltalkIntent {
	return []knowledge.SmalltalkIntent{
		{
			Name:      "greeting",
			Patterns:  []string{"hello", "hi there", "good morning"},
			Responses: []string{"Hello!", "Hi!"},
		},
		{
			Name:      "thanks",
			Patterns:  []string{"thank you", "thanks"},
			Responses: []string{"Anytime!"},
		},
		{
			Name:      "empty_bucket",
			Patterns:  []string{"void"},
			Responses: nil,
		},
	}
}

func TestSmalltalkSubstringMatch(t *testing.T) {
	m := NewSmalltalkMatcher(testIntents(), 0, pickFirst)

	got, ok := m.Match("well hello friend")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "Hello!" {
		t.Errorf("got %q, want first greeting response", got)
	}
}

func TestSmalltalkNoMatch(t *testing.T) {
	m := NewSmalltalkMatcher(testIntents(), 0, pickFirst)

	if got, ok := m.Match("completely unrelated sentence about databases"); ok {
		t.Errorf("unexpected match %q", got)
	}
	if _, ok := m.Match(""); ok {
		t.Error("empty input must not match")
	}
}

func TestSmalltalkFuzzyFallback(t *testing.T) {
	m := NewSmalltalkMatcher(testIntents(), 0.5, pickFirst)

	// "thank yu" contains no pattern verbatim but overlaps "thank you"
	// heavily, so the fuzzy pass should pick the thanks intent.
	got, ok := m.Match("thank yu")
	if !ok {
		t.Fatal("expected fuzzy match")
	}
	if got != "Anytime!" {
		t.Errorf("got %q, want thanks response", got)
	}
}

func TestSmalltalkEmptyResponses(t *testing.T) {
	m := NewSmalltalkMatcher(testIntents(), 0, pickFirst)

	if got, ok := m.Match("void"); ok {
		t.Errorf("intent without responses answered %q", got)
	}
}

func TestSmalltalkRandSelection(t *testing.T) {
	pickLast := func(n int) int { return n - 1 }
	m := NewSmalltalkMatcher(testIntents(), 0, pickLast)

	got, ok := m.Match("hello")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "Hi!" {
		t.Errorf("got %q, want last greeting response", got)
	}
}
