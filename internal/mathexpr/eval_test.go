package mathexpr

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"10 % 4", 2},
		{"2 ^ 3 ^ 2", 512}, // right-associative
		{"-5 + 3", -2},
		{"--5", 5},
		{"+ 5", 5},
		{"3.5 * 2", 7},
		{"((1))", 1},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		if err != nil {
			t.Errorf("Evaluate(%q): %v", tt.expr, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	exprs := []string{
		"",
		"1 +",
		"* 3",
		"(1 + 2",
		"1..2",
		"1 / 0",
		"5 % 0",
		"2 2",
		")",
	}

	for _, expr := range exprs {
		if got, err := Evaluate(expr); err == nil {
			t.Errorf("Evaluate(%q) = %v, want error", expr, got)
		}
	}
}
