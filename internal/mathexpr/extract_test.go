package mathexpr

import "testing"

func TestAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"simple addition", "what is 12 + 8?", "= 20", true},
		{"no spaces", "what's 2+2", "= 4", true},
		{"precedence", "2 + 3 * 4", "= 14", true},
		{"parentheses", "calculate (2+3)*4 for me", "= 20", true},
		{"power", "2^10", "= 1024", true},
		{"modulo", "7 % 3", "= 1", true},
		{"decimal result", "calc 5 / 2", "= 2.5", true},
		{"decimal operands", "1.5 + 1.5", "= 3", true},
		{"negative", "3 - 10", "= -7", true},
		{"bare number", "who is chaitanya 2 questions", "", false},
		{"ordinal digit", "his 2nd project", "", false},
		{"year", "founded in 2019", "", false},
		{"no digits", "a + b", "", false},
		{"divide by zero", "10 / 0", "", false},
		{"empty", "", "", false},
		{"plain text", "tell me a joke", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Answer(tt.input)
			if ok != tt.ok {
				t.Fatalf("Answer(%q) ok=%v, want %v (got %q)", tt.input, ok, tt.ok, got)
			}
			if got != tt.want {
				t.Errorf("Answer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractRequiresOperator(t *testing.T) {
	if expr, ok := Extract("I have 5 apples"); ok {
		t.Errorf("bare number extracted as %q", expr)
	}
	if _, ok := Extract("5 + 5 apples"); !ok {
		t.Error("expression with operator should extract")
	}
}

func TestExtractTrimsWordGluedDigits(t *testing.T) {
	// "phase2" must not contribute its trailing digit to an expression.
	if expr, ok := Extract("phase2 report"); ok {
		t.Errorf("glued digit extracted as %q", expr)
	}
}
