package pipeline

import (
	"regexp"
	"strings"
)

// maxTokenLength is the longest unbroken token the layout engines accept.
// Longer tokens (URLs, concatenated identifiers) are hard-split so automatic
// line wrapping never fails on an unbreakable string.
const maxTokenLength = 45

// replacements maps typographic characters and common UTF-8-as-Latin-1
// mojibake sequences to ASCII equivalents. Applied in order; multi-byte
// sequences sharing a prefix are listed longest first.
var replacements = []struct {
	old string
	new string
}{
	{"â€™", "'"},
	{"â€˜", "'"},
	{"â€œ", `"`},
	{"â€", `"`},
	{"â€“", "-"},
	{"â€”", "-"},
	{"â€", `"`},
	{"Â·", "-"},
	{"Â", ""},
	{"•", "-"},
	{"●", "-"},
	{"◦", "-"},
	{"–", "-"},
	{"—", "-"},
	{"−", "-"},
	{"’", "'"},
	{"‘", "'"},
	{"“", `"`},
	{"”", `"`},
	{"…", "..."},
	{" ", " "},
	{"​", ""},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize normalizes arbitrary AI-generated text into the character set the
// document renderers can encode. Lossy on purpose: characters outside Latin-1
// are dropped rather than risking a renderer failure. Idempotent.
func Sanitize(text string) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}

	text = repairAsterisks(text)

	// Project onto Latin-1, dropping anything unencodable
	var latin strings.Builder
	latin.Grow(len(text))
	for _, r := range text {
		if r <= 0xFF {
			latin.WriteRune(r)
		}
	}
	text = latin.String()

	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))

	return splitLongTokens(text)
}

// repairAsterisks removes malformed markdown emphasis markers that would leak
// into the rendered document as visible asterisks: lone asterisks and runs of
// three or more are dropped, `**` bold pairs survive.
func repairAsterisks(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if runes[i] != '*' {
			b.WriteRune(runes[i])
			i++
			continue
		}
		runLen := 0
		for i+runLen < len(runes) && runes[i+runLen] == '*' {
			runLen++
		}
		if runLen == 2 {
			b.WriteString("**")
		}
		i += runLen
	}
	return b.String()
}

// splitLongTokens breaks every whitespace-delimited token longer than
// maxTokenLength into chunks rejoined with spaces
func splitLongTokens(text string) string {
	parts := strings.Fields(text)
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		runes := []rune(part)
		if len(runes) <= maxTokenLength {
			normalized = append(normalized, part)
			continue
		}
		for start := 0; start < len(runes); start += maxTokenLength {
			end := start + maxTokenLength
			if end > len(runes) {
				end = len(runes)
			}
			normalized = append(normalized, string(runes[start:end]))
		}
	}
	return strings.Join(normalized, " ")
}
