package pipeline

import (
	"strings"
	"testing"
)

func TestSanitizeReplacements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mojibake apostrophe", "teamâ€™s velocity", "team's velocity"},
		{"mojibake quotes", "â€œquotedâ€", `"quoted"`},
		{"curly apostrophe", "it’s done", "it's done"},
		{"curly quotes", "a “big” win", `a "big" win`},
		{"bullet chars", "• first ● second ◦ third", "- first - second - third"},
		{"dashes", "2019–2021 — remote", "2019-2021 - remote"},
		{"ellipsis", "and more…", "and more..."},
		{"nbsp collapsed", "a b", "a b"},
		{"zero width space dropped", "a​b", "ab"},
		{"stray latin mojibake", "salaryÂ· negotiable", "salary- negotiable"},
		{"whitespace collapsed", "a \t b\n\nc", "a b c"},
		{"non latin dropped", "cafe 世界 ok", "cafe ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeAsteriskRepair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single dropped", "a * b", "a b"},
		{"pair kept", "grew **40%** yoy", "grew **40%** yoy"},
		{"triple dropped", "a *** b", "a b"},
		{"long run dropped", "a ****** b", "a b"},
		{"trailing single dropped", "emphasis*", "emphasis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeSplitsLongTokens(t *testing.T) {
	token := strings.Repeat("x", 100)
	got := Sanitize("see " + token + " here")

	for _, field := range strings.Fields(got) {
		if len(field) > maxTokenLength {
			t.Errorf("token %q exceeds %d chars", field, maxTokenLength)
		}
	}
	if !strings.Contains(got, strings.Repeat("x", maxTokenLength)) {
		t.Errorf("expected a full-length chunk in %q", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"teamâ€™s “goals” • 2019–2021 … " + strings.Repeat("y", 90),
		"plain ascii text",
		"grew **40%** with *stray marks***",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent: first %q, second %q", once, twice)
		}
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want empty", got)
	}
	if got := Sanitize("   \n\t  "); got != "" {
		t.Errorf("Sanitize(whitespace) = %q, want empty", got)
	}
}
