package pipeline

import "strings"

// Span is one segment of the minimal inline markup produced by Emphasize:
// plain or bold text. Both document renderers consume spans instead of
// re-parsing raw `**` markers independently.
type Span struct {
	Text string
	Bold bool
}

// ParseSpans splits text on the `**` delimiter, alternating segments between
// normal and bold runs, starting in the non-bold state. Empty segments
// (adjacent delimiters) are dropped.
func ParseSpans(text string) []Span {
	parts := strings.Split(text, "**")
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}

// StripMarkers removes all bold markers, the plain-text fallback for engines
// without inline markup support
func StripMarkers(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
