package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "hello, world;", "hello world"},
		{"keeps math symbols", "what is 2+2?", "what is 2+2?"},
		{"strips possessive", "chaitanya's skills", "chaitanya skills"},
		{"strips curly possessive", "chaitanya’s skills", "chaitanya skills"},
		{"collapses whitespace", "  a \t b \n c ", "a b c"},
		{"keeps devanagari", "jokes सुनाओ", "jokes सुनाओ"},
		{"strips other scripts", "café olé", "caf ol"},
		{"empty", "", ""},
		{"only punctuation", "@#$&", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"what's 2+2?",
		"  messy   spacing\t here ",
		"chaitanya's projects & skills",
		"नमस्ते friend",
		"",
	}

	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestContainsAny(t *testing.T) {
	needles := []string{"shut up", "stop it"}

	if !ContainsAny("please shut up now", needles) {
		t.Error("expected match for contained phrase")
	}
	if ContainsAny("carry on", needles) {
		t.Error("unexpected match")
	}
	if ContainsAny("anything", []string{""}) {
		t.Error("empty needle must not match")
	}
}
