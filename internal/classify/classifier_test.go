package classify

import (
	"testing"

	"github.com/ckkulkarni/tatvam/internal/match"
)

func TestClassifyVerbatimCue(t *testing.T) {
	c := NewClassifier(DefaultCues(), 0)

	tests := []struct {
		input string
		want  string
	}{
		{"current company", "company"},
		{"education", "education"},
		{"skills", "skills"},
		{"testing dashboard", "eol"},
		{"full name", "fullname"},
	}

	for _, tt := range tests {
		label, score, ok := c.Classify(match.Normalize(tt.input))
		if !ok {
			t.Errorf("Classify(%q): no match (score %v), want %q", tt.input, score, tt.want)
			continue
		}
		if label != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.input, label, tt.want)
		}
	}
}

func TestClassifyBelowThreshold(t *testing.T) {
	c := NewClassifier(DefaultCues(), 0)

	for _, input := range []string{
		"tell me about the weather in mumbai today",
		"xyzzy plugh",
		"",
	} {
		if label, _, ok := c.Classify(match.Normalize(input)); ok {
			t.Errorf("Classify(%q) = %q, want no match", input, label)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	cues := CueTable{
		"beta":  {"same cue"},
		"alpha": {"same cue"},
	}
	c := NewClassifier(cues, 0.5)

	first, _, ok := c.Classify("same cue")
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 20; i++ {
		label, _, ok := c.Classify("same cue")
		if !ok || label != first {
			t.Fatalf("iteration %d: got %q ok=%v, want stable %q", i, label, ok, first)
		}
	}
	// Sorted scan order means the tie goes to "alpha".
	if first != "alpha" {
		t.Errorf("tie broke to %q, want alpha", first)
	}
}

func TestClassifyCustomThreshold(t *testing.T) {
	cues := CueTable{"skills": {"skills"}}

	strict := NewClassifier(cues, 0.99)
	if label, _, ok := strict.Classify("your skills"); ok {
		t.Errorf("strict classifier matched %q", label)
	}

	loose := NewClassifier(cues, 0.3)
	if _, _, ok := loose.Classify("your skills"); !ok {
		t.Error("loose classifier found no match")
	}
}
