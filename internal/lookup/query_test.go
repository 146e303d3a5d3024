package lookup

import "testing"

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"what is recursion", "recursion"},
		{"please explain what is recursion bro", "recursion"},
		{"Who is Alan Turing", "Alan Turing"},
		{"tell me about goroutines plz", "goroutines"},
		{"what's the capital of france", "the capital of france"},
		{"kubernetes", "kubernetes"},
		{"what is", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanQuery(tt.in); got != tt.want {
			t.Errorf("CleanQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text stays intact", "plain text stays intact"},
		{"<b>Go</b> is <i>fun</i>", "Go is fun"},
		{"<p>one</p><p>two</p>", "onetwo"},
	}

	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
