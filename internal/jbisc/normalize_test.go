package jbisc

import "testing"

func TestStripBracketsAndTrim(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[ foo] ", "foo"},
		{"foo", "foo"},
		{"[foo", "foo"},
		{"foo]", "foo"},
		{"  foo  ", "foo"},
		{"[foo]", "foo"},
		{"[東京]", "東京"},
		{"", ""},
		// Only the outer pair is removed, inner brackets survive.
		{"[[foo]]", "[foo]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripBracketsAndTrim(tt.input); got != tt.expected {
				t.Errorf("StripBracketsAndTrim(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
